// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-review-market/internal/config"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ---- Helpers ----

// newTestDB wraps a sqlmock connection in a *DB for the given driver.
func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		conn.Close()
	})

	return newDB(conn, driver, logger.Nop()), mock
}

func newPostgresTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newTestDB(t, config.DriverPostgres)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: extended}
}

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)


func sqlmockResult(affected int64) driver.Result {
	return sqlmock.NewResult(0, affected)
}
