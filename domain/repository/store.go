package repository

import "context"

// Store is the persistence contract shared by domain stores.
// Lookups that match nothing return an error wrapping the store's not-found
// sentinel.
type Store[T any] interface {
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	Save(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, entity T) error
	DeleteBy(ctx context.Context, options ...Option) error
}
