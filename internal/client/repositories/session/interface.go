// Package session provides the durable key/value storage backing the
// client session. Absence of a key is reported as (nil, nil), which readers
// treat as anonymous state.
package session

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
