// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// review market server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidEmailOrPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs and no better message is available.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found."

	// MsgMissingAuthorization is returned when a protected route is called
	// without an "Authorization: Bearer <token>" header.
	MsgMissingAuthorization = "authorization header is missing or malformed"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// modify a resource that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	MsgUserCreated    = "User created."
	MsgReviewCreated  = "Review created."
	MsgCommentCreated = "Comment created."

	MsgUserDeleted    = "User deleted"
	MsgReviewDeleted  = "Review deleted"
	MsgCommentDeleted = "Comment deleted."

	MsgEditSuccessful = "Edit successful"
)
