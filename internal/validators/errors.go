// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives a value of a
	// type the validator does not know about.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidField wraps every failed field rule.
	ErrInvalidField = errors.New("invalid field")
)
