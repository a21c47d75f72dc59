// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a marketplace account. A user authors reviews and comments
// and authenticates with email and password.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name shown next to reviews and comments.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized to clients.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
