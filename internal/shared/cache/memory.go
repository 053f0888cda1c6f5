package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is a process-local Cache used when no redis is configured.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (m *Memory) Get(key string, dest interface{}) error {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return ErrMiss
	}

	if err := json.Unmarshal(e.data, dest); err != nil {
		return fmt.Errorf("can't unmarshal cached json: %s", err)
	}
	return nil
}

func (m *Memory) Set(key string, expireTimeout time.Duration, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("can't json marshal value: %s", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		data:      data,
		expiresAt: m.now().Add(expireTimeout),
	}
	return nil
}
