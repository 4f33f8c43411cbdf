package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Query runs a read-only statement with $n placeholders and calls each once per
// row. The statement is bounded by Config.QueryTimeout when set. Driver errors
// are passed through TranslateError.
//
// The statement is sent through database/sql rather than gorm.Raw because
// gorm only rewrites ? placeholders.
func (p *Postgres) Query(ctx context.Context, query string, args []any, each func(rows *sql.Rows) error) error {
	sqlDB, err := p.DB().DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if p.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.QueryTimeout)
		defer cancel()
	}

	rows, err := sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return p.TranslateError(ctx, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := each(rows); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return p.TranslateError(ctx, err)
	}
	return nil
}

// ScanRow scans the current row into dest, matching columns to the struct's
// gorm column names.
func (p *Postgres) ScanRow(rows *sql.Rows, dest any) error {
	if err := p.DB().ScanRows(rows, dest); err != nil {
		return fmt.Errorf("scan row: %w", err)
	}
	return nil
}

// Collect runs query and scans every row into a T.
func Collect[T any](ctx context.Context, p *Postgres, query string, args ...any) ([]T, error) {
	var out []T
	err := p.Query(ctx, query, args, func(rows *sql.Rows) error {
		var item T
		if err := p.ScanRow(rows, &item); err != nil {
			return err
		}
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
