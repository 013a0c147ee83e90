package service

import (
	"context"

	"github.com/MKhiriev/fortuna/internal/store"
)

type txFunc = func(context.Context, store.Querier) error

// runInline executes the unit of work directly, standing in for a pool.
func runInline(q store.Querier) func(context.Context, txFunc) error {
	return func(ctx context.Context, fn txFunc) error {
		return fn(ctx, q)
	}
}
