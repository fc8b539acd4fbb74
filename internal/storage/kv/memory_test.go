package kv

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, "draft", json.RawMessage(`{"amount":"10"}`)))
	value, ok, err = store.Get(ctx, "draft")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"amount":"10"}`, string(value))

	require.NoError(t, store.Set(ctx, "draft", json.RawMessage(`{"amount":"20"}`)))
	value, _, _ = store.Get(ctx, "draft")
	assert.JSONEq(t, `{"amount":"20"}`, string(value), "set overwrites")

	require.NoError(t, store.Remove(ctx, "draft"))
	_, ok, err = store.Get(ctx, "draft")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Remove(ctx, "draft"), "removing an absent key is fine")
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	original := json.RawMessage(`{"a":1}`)

	require.NoError(t, store.Set(ctx, "k", original))
	original[2] = 'b'

	value, _, _ := store.Get(ctx, "k")
	assert.JSONEq(t, `{"a":1}`, string(value))
}
