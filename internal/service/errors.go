// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every request validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrWrongCredentials is returned by Login for an unknown email or a
	// wrong password. Both cases share one error and run one bcrypt
	// comparison, so neither the response nor its latency tells the two apart.
	ErrWrongCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when the authenticated user does not own the
	// record they try to change.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound = errors.New("not found")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
