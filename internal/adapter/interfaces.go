// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the review market REST API.
//
// The primary abstraction is [ServerAdapter]. [NewHTTPServerAdapter] returns
// the HTTP/REST implementation built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values defined
// in errors.go so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-review-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the review market server.
// Implementations handle serialisation, the bearer token and mapping of
// transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Signup creates a new account. It does not log the user in.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login exchanges credentials for a token and stores it via SetToken.
	// The returned token carries the user id read from its claims.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// DeleteUser removes the account of the logged-in user.
	DeleteUser(ctx context.Context, userID int64) error

	ListItems(ctx context.Context) ([]models.Item, error)

	// GetItem returns the item with its reviews and comments, or nil when
	// the item does not exist.
	GetItem(ctx context.Context, itemID int64) (*models.ItemDetails, error)

	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) (models.Item, error)

	ListReviews(ctx context.Context) ([]models.Review, error)
	ListUserReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.CreateReviewRequest) error
	UpdateReview(ctx context.Context, reviewID int64, req models.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, reviewID int64) error

	ListComments(ctx context.Context) ([]models.Comment, error)
	ListUserComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, req models.CreateCommentRequest) error
	UpdateComment(ctx context.Context, commentID int64, req models.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, commentID int64) error
}
