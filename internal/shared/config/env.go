package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
)

type EnvConfig struct {
	log logutil.Log
}

func NewEnvConfig(log logutil.Log) *EnvConfig {
	return &EnvConfig{
		log: log,
	}
}

func (c EnvConfig) GetString(key string) string {
	return c.getValue(key)
}

// GetStringList splits a comma-separated value, dropping empty items.
func (c EnvConfig) GetStringList(key string) []string {
	var ret []string
	for _, v := range strings.Split(c.getValue(key), ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			ret = append(ret, v)
		}
	}

	return ret
}

func (c EnvConfig) getValue(key string) string {
	return os.Getenv(strings.ToUpper(key))
}

func (c EnvConfig) GetDuration(key string, def time.Duration) time.Duration {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	d, err := time.ParseDuration(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid %s %q: %s", key, cfgStr, err)
		return def
	}

	return d
}

func (c EnvConfig) GetInt(key string, def int) int {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	v, err := strconv.Atoi(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid %s %q: %s", key, cfgStr, err)
		return def
	}

	return v
}

func (c EnvConfig) GetBool(key string, def bool) bool {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	switch strings.ToLower(cfgStr) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}

	c.log.Warnf("Config: invalid %s %q", key, cfgStr)
	return def
}
