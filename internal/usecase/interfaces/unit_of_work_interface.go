package interfaces

import "context"

// IUnitOfWork runs fn as a single atomic unit of work.
//
// Every repository write performed with the ctx handed to fn commits together
// when fn returns nil, and is discarded when fn returns an error. Reads made
// with that ctx observe the pending writes. Nested calls join the outer unit.
type IUnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ISequenceRepository hands out a globally increasing counter.
//
// Next must be atomic at the storage layer: concurrent callers never receive
// the same value. Values are not returned to the pool when a unit of work
// rolls back, so gaps are possible.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
