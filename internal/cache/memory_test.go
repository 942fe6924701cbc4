package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	assert.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	value, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryInvalidatePrefix(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "products:/api/products?page=1", []byte("a"), time.Minute))
	assert.NoError(t, m.Set(ctx, "products:/api/products/42", []byte("b"), time.Minute))
	assert.NoError(t, m.Set(ctx, "orders:/api/orders", []byte("c"), time.Minute))

	assert.NoError(t, m.InvalidatePrefix(ctx, "products:"))

	_, err := m.Get(ctx, "products:/api/products?page=1")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = m.Get(ctx, "products:/api/products/42")
	assert.ErrorIs(t, err, ErrMiss)
	value, err := m.Get(ctx, "orders:/api/orders")
	assert.NoError(t, err)
	assert.Equal(t, []byte("c"), value)
}
