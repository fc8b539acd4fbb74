// Package kv implements the key-value contract used to persist the in-flight transaction draft.
package kv

import (
	"context"
	"encoding/json"
)

// IStore defines the key-value operations. Values are opaque JSON documents.
//
//go:generate mockery --name IStore --output mock_IStore.go
type IStore interface {
	Set(ctx context.Context, key string, value json.RawMessage) error
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Remove(ctx context.Context, key string) error
}
