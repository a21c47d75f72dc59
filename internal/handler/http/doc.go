// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the review market.
//
// It wires the chi router, the request handlers for users, items, reviews
// and comments, and the middleware chain: request tracing, access logging,
// panic recovery, request timeouts, gzip compression and bearer token
// authentication. Handlers decode and encode bodies and map service errors
// to status codes; validation and ownership checks live in the service layer.
package http
