package gormdb

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // register postgres dialect and lib/pq
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
)

func GetDBConnString(cfg config.Config) (string, error) {
	dbURL := cfg.GetString("DATABASE_URL")
	if dbURL != "" {
		return strings.Replace(dbURL, "postgresql", "postgres", 1), nil
	}

	host := cfg.GetString("DATABASE_HOST")
	username := cfg.GetString("DATABASE_USERNAME")
	password := cfg.GetString("DATABASE_PASSWORD")
	name := cfg.GetString("DATABASE_NAME")
	if host == "" || username == "" || password == "" || name == "" {
		return "", errors.New("no DATABASE_URL or DATABASE_{HOST,USERNAME,PASSWORD,NAME} in config")
	}

	sslMode := cfg.GetString("DATABASE_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", username, password, host, name, sslMode), nil
}

func GetDB(cfg config.Config, log logutil.Log, connString string) (*gorm.DB, error) {
	if connString == "" {
		var err error
		connString, err = GetDBConnString(cfg)
		if err != nil {
			return nil, err
		}
	}

	adapter := strings.Split(connString, "://")[0]
	db, err := gorm.Open(adapter, connString)
	if err != nil {
		return nil, errors.Wrap(err, "can't open db connection")
	}

	db.DB().SetMaxOpenConns(cfg.GetInt("DATABASE_MAX_OPEN_CONNS", 20))
	db.SetLogger(NewLogger(log.Child("db")))
	if cfg.GetBool("DEBUG_DB", false) {
		db = db.Debug()
	}

	return db, nil
}

// AutoMigrate creates or extends tables for the given models. Production
// schemas are owned by SQL migrations; this is for tests and local runs
// without a migrations directory.
func AutoMigrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...).Error; err != nil {
		return errors.Wrap(err, "can't auto-migrate models")
	}

	return nil
}
