// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/logger"
)

// queryList runs a multi-row SELECT and scans every row with scan.
// An empty result is an empty, non-nil slice.
func queryList[T any](ctx context.Context, db *DB, funcName, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// queryOwner reads a single user id column. notFound is returned when the
// row does not exist.
func queryOwner(ctx context.Context, db *DB, funcName, query string, args []any, notFound error) (int64, error) {
	log := logger.FromContext(ctx)

	var ownerID int64
	err := db.QueryRowContext(ctx, query, args...).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, notFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to load owner")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ownerID, nil
}

// execAffectingOne runs a DML statement and returns notFound when no row was
// affected.
func execAffectingOne(ctx context.Context, db *DB, funcName, query string, args []any, notFound error) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return db.constraintError(err, ErrConstraintViolation, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func buildError(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to create query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
