// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "fmt"

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells a repository which integrity rule, if any, a failed statement broke.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and errors that are not
	// constraint violations (network failures, syntax errors, ...).
	Unclassified ErrorClassification = iota

	UniqueViolation
	ForeignKeyViolation

	// CheckViolation covers CHECK and NOT NULL constraints.
	CheckViolation
)

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
// Every supported driver ships its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// constraintError translates a classified driver error into the matching
// store sentinel. unique is the sentinel used for unique violations, since
// its meaning depends on the table. Unclassified errors are wrapped with
// fallback.
func (db *DB) constraintError(err error, unique, fallback error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return unique
	case ForeignKeyViolation:
		return ErrReferencedRecordNotFound
	case CheckViolation:
		return ErrConstraintViolation
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
