package database

import (
	"context"

	"gorm.io/gorm"
)

// WithTransaction runs fn inside a transaction. The Database passed to fn is
// bound to the transaction, so stores built from it take part in it. The
// transaction commits when fn returns nil and rolls back otherwise.
func WithTransaction(ctx context.Context, db Database, fn func(tx Database) error) error {
	return db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Database{db: tx})
	})
}

// WithTransactionResult is WithTransaction for functions returning a value.
// The zero value is returned when the transaction rolls back.
func WithTransactionResult[T any](ctx context.Context, db Database, fn func(tx Database) (T, error)) (T, error) {
	var result T
	err := WithTransaction(ctx, db, func(tx Database) error {
		var err error
		result, err = fn(tx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
