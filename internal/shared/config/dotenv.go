package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadDotEnv loads .env and .env.<GO_ENV> from dir if they exist. Values from
// the later file win; variables already set in the environment are kept.
func LoadDotEnv(dir string) error {
	names := []string{".env"}
	if goEnv := os.Getenv("GO_ENV"); goEnv != "" {
		names = append(names, ".env."+goEnv)
	}

	var files []string
	for _, name := range names {
		fpath := filepath.Join(dir, name)
		if _, err := os.Stat(fpath); err != nil {
			continue
		}
		files = append(files, fpath)
	}

	if len(files) == 0 {
		return nil
	}

	// godotenv.Load doesn't override: load the most specific file first
	for i := len(files) - 1; i >= 0; i-- {
		if err := godotenv.Load(files[i]); err != nil {
			return errors.Wrapf(err, "can't load %s", files[i])
		}
	}

	return nil
}
