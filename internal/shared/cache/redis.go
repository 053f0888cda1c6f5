package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/garyburd/redigo/redis"
)

const keyPrefix = "cache/"

type Redis struct {
	pool *redis.Pool
}

func NewRedis(pool *redis.Pool) *Redis {
	return &Redis{pool: pool}
}

func (r Redis) Get(key string, dest interface{}) error {
	key = keyPrefix + key

	conn := r.pool.Get()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", key))
	if err != nil {
		if err == redis.ErrNil {
			return ErrMiss
		}
		return fmt.Errorf("error getting key %s: %v", key, err)
	}

	if err = json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("can't unmarshal json from redis: %s", err)
	}

	return nil
}

func (r Redis) Set(key string, expireTimeout time.Duration, value interface{}) error {
	key = keyPrefix + key

	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("can't json marshal value: %s", err)
	}

	conn := r.pool.Get()
	defer conn.Close()

	seconds := int(expireTimeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	if _, err = conn.Do("SETEX", key, seconds, valueBytes); err != nil {
		return fmt.Errorf("error setting key %s: %v", key, err)
	}

	return nil
}
