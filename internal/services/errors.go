package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoData means the provider answered with an empty result list.
var ErrNoData = errors.New("no data")

// StoreError wraps a failed cache query or insert
type StoreError struct {
	Op    string // "select" or "insert"
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// SQLState returns the Postgres error code, or "" for non-Postgres errors
func (e *StoreError) SQLState() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
