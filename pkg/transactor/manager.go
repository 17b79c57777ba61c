package transactor

import "context"

// Manager runs fn inside a single database transaction. Nested calls reuse
// the outer transaction.
//
//go:generate mockgen -source=manager.go -destination=mocks/mock.go -package=mocktransactor
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
