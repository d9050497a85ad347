package repository

import (
	"context"
	"errors"

	"order-management/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrNoRows is returned by writes that matched nothing (update or delete of
// a missing id). Lookups return (nil, nil) instead.
var ErrNoRows = errors.New("no rows affected")

const uniqueViolation = "23505"

// UniqueViolation returns the constraint name when err is a unique key
// violation.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// dbExecer is satisfied by both the pool and a transaction.
type dbExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Customer CustomerRepository
	Product  ProductRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Product:  NewProductRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
