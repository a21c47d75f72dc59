// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and removal against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, buildError(ctx, "*userRepository.CreateUser", err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("user creation failed")
		return models.User{}, r.db.constraintError(err, ErrEmailAlreadyExists, ErrExecutingQuery)
	}

	return created, nil
}

// FindUserByEmail retrieves the user with the given email, including the
// password hash. Returns [ErrUserNotFound] when there is no such user.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, buildError(ctx, "*userRepository.FindUserByEmail", err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// OwnerID returns userID itself when the user exists: a user record is owned
// by that user.
func (r *userRepository) OwnerID(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildSelectUserOwnerQuery(r.db.builder, userID)
	if err != nil {
		return 0, buildError(ctx, "*userRepository.OwnerID", err)
	}

	return queryOwner(ctx, r.db, "*userRepository.OwnerID", query, args, ErrUserNotFound)
}

// DeleteUser removes the user; their reviews and comments go with them
// through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		return buildError(ctx, "*userRepository.DeleteUser", err)
	}

	return execAffectingOne(ctx, r.db, "*userRepository.DeleteUser", query, args, ErrUserNotFound)
}
