// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /users.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CreateReviewRequest is the body of POST /reviews.
//
// UserID is optional: the author is always the authenticated user, and a
// non-zero UserID that differs from it is rejected.
type CreateReviewRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	ItemID int64  `json:"itemId" validate:"gt=0"`
	UserID int64  `json:"userId,omitempty" validate:"gte=0"`
}

// UpdateReviewRequest is the body of PUT /review/{id}.
type UpdateReviewRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// CreateCommentRequest is the body of POST /comments.
// UserID follows the same rules as in [CreateReviewRequest].
type CreateCommentRequest struct {
	Text     string `json:"text" validate:"required"`
	ReviewID int64  `json:"reviewId" validate:"gt=0"`
	UserID   int64  `json:"userId,omitempty" validate:"gte=0"`
}

// UpdateCommentRequest is the body of PUT /comment/{id}.
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
