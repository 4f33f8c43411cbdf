package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by TranslateError. The original error stays in the chain.
var (
	ErrQueryCanceled   = errors.New("postgres: query canceled")
	ErrConnection      = errors.New("postgres: connection failure")
	ErrInvalidQuery    = errors.New("postgres: invalid query")
	ErrUndefinedObject = errors.New("postgres: undefined table or column")
	ErrConflict        = errors.New("postgres: serialization conflict")
	ErrResources       = errors.New("postgres: insufficient resources")
)

// ErrorCategory groups errors by how callers should react to them.
type ErrorCategory int

const (
	CategoryUnknown ErrorCategory = iota
	CategoryTimeout
	CategoryConnection
	CategoryQuery
	CategoryTransient
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryTimeout:
		return "timeout"
	case CategoryConnection:
		return "connection"
	case CategoryQuery:
		return "query"
	case CategoryTransient:
		return "transient"
	}
	return "unknown"
}

// TranslateError wraps err with the matching sentinel. ctx is consulted so that
// a driver error caused by an expired deadline reads as ErrQueryCanceled.
func (p *Postgres) TranslateError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx != nil && ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrQueryCanceled, err)
	}
	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrQueryCanceled
	}
	if errors.Is(err, driver.ErrBadConn) {
		return ErrConnection
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "57014":
			return ErrQueryCanceled
		case pgErr.Code == "42P01", pgErr.Code == "42703", pgErr.Code == "42883":
			return ErrUndefinedObject
		case strings.HasPrefix(pgErr.Code, "42"), strings.HasPrefix(pgErr.Code, "22"):
			return ErrInvalidQuery
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return ErrConflict
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return ErrConnection
		case strings.HasPrefix(pgErr.Code, "53"):
			return ErrResources
		}
		return nil
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrConnection
	}
	return nil
}

// GetErrorCategory classifies an error returned by this package.
func GetErrorCategory(err error) ErrorCategory {
	switch {
	case err == nil:
		return CategoryUnknown
	case errors.Is(err, ErrQueryCanceled):
		return CategoryTimeout
	case errors.Is(err, ErrConnection):
		return CategoryConnection
	case errors.Is(err, ErrInvalidQuery), errors.Is(err, ErrUndefinedObject):
		return CategoryQuery
	case errors.Is(err, ErrConflict), errors.Is(err, ErrResources):
		return CategoryTransient
	}
	return CategoryUnknown
}

// IsRetryable reports whether running the same statement again may succeed.
func IsRetryable(err error) bool {
	switch GetErrorCategory(err) {
	case CategoryConnection, CategoryTransient:
		return true
	}
	return false
}
