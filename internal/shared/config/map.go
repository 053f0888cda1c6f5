package config

import (
	"strings"
	"time"
)

// MapConfig is a static Config, used by tests and tools that don't read the
// process environment.
type MapConfig map[string]string

var _ Config = MapConfig{}

func (c MapConfig) GetString(key string) string {
	return c[strings.ToUpper(key)]
}

func (c MapConfig) GetStringList(key string) []string {
	var ret []string
	for _, v := range strings.Split(c.GetString(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}

func (c MapConfig) GetDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		return def
	}
	return d
}

func (c MapConfig) GetInt(key string, def int) int {
	s := c.GetString(key)
	if s == "" {
		return def
	}

	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func (c MapConfig) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.GetString(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}
