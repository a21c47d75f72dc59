// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	// ErrInvalidJWTParams is returned when a token is requested with an empty
	// issuer, an empty key or a non-positive duration.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrUnexpectedSigningMethod is returned for tokens not signed with HMAC.
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

	ErrEmptySubject    = errors.New("empty subject")
	ErrSubjectMismatch = errors.New("subject does not match user id claim")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
