package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok := m.Get(ctx, "content:/events")
	assert.False(t, ok)

	assert.NoError(t, m.Set(ctx, "content:/events", []byte("[]"), time.Minute))
	v, ok := m.Get(ctx, "content:/events")
	assert.True(t, ok)
	assert.Equal(t, []byte("[]"), v)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, "k", []byte("v"), time.Minute)
	_ = m.Set(ctx, "forever", []byte("v"), 0)

	now = now.Add(2 * time.Minute)

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok, "entry should have expired")
	_, ok = m.Get(ctx, "forever")
	assert.True(t, ok, "zero ttl never expires")
}

func TestMemoryPurgePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.Set(ctx, "content:/events", []byte("a"), 0)
	_ = m.Set(ctx, "content:/gallery", []byte("b"), 0)
	_ = m.Set(ctx, "brochure:url", []byte("c"), 0)

	n, err := m.Purge(ctx, "content:/events")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = m.Purge(ctx, "content:")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok := m.Get(ctx, "brochure:url")
	assert.True(t, ok)
}
