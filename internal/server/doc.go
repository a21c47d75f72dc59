// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
