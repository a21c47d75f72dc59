// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-review-market/internal/config"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewDB_DialectPerDriver(t *testing.T) {
	pg, _ := newTestDB(t, config.DriverPostgres)
	assert.Equal(t, config.DriverPostgres, pg.Driver())
	assert.IsType(t, &PostgresErrorClassifier{}, pg.errorClassificator)

	query, _, err := pg.builder.Select("id").From("items").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "$1")

	lite, _ := newTestDB(t, config.DriverSQLite)
	assert.Equal(t, config.DriverSQLite, lite.Driver())
	assert.IsType(t, &SQLiteErrorClassifier{}, lite.errorClassificator)

	query, _, err = lite.builder.Select("id").From("items").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "id = ?")
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reviews.db", "reviews.db?_foreign_keys=on"},
		{"file:reviews.db?cache=shared", "file:reviews.db?cache=shared&_foreign_keys=on"},
		{"reviews.db?_fk=1", "reviews.db?_fk=1"},
		{":memory:?_foreign_keys=off", ":memory:?_foreign_keys=off"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}

func TestWipeAll_DeletesChildrenFirst(t *testing.T) {
	db, mock := newPostgresTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments").WillReturnResult(sqlmockResult(3))
	mock.ExpectExec("DELETE FROM reviews").WillReturnResult(sqlmockResult(2))
	mock.ExpectExec("DELETE FROM items").WillReturnResult(sqlmockResult(3))
	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmockResult(5))
	mock.ExpectCommit()

	require.NoError(t, db.WipeAll(context.Background()))
}

func TestWipeAll_RollsBackOnError(t *testing.T) {
	db, mock := newPostgresTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments").WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := db.WipeAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestWipeAll_BeginError(t *testing.T) {
	db, mock := newPostgresTestDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	err := db.WipeAll(context.Background())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}
