package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()

	var got string
	assert.Equal(t, ErrMiss, m.Get("k", &got))

	require.NoError(t, m.Set("k", time.Minute, "v"))
	require.NoError(t, m.Get("k", &got))
	assert.Equal(t, "v", got)
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set("k", time.Second, 42))
	now = now.Add(2 * time.Second)

	var got int
	assert.Equal(t, ErrMiss, m.Get("k", &got))
	assert.Zero(t, got)
}
