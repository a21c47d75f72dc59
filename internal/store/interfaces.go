// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-review-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OwnerLoader reads the id of the user owning a record. It returns the
// repository's not-found sentinel when the record does not exist.
type OwnerLoader interface {
	OwnerID(ctx context.Context, id int64) (int64, error)
}

type UserRepository interface {
	OwnerLoader

	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type ItemRepository interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, itemID int64) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) (models.Item, error)
}

type ReviewRepository interface {
	OwnerLoader

	ListReviews(ctx context.Context) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error)
	ListReviewDetailsByItem(ctx context.Context, itemID int64) ([]models.ReviewDetails, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, reviewID int64) error
}

type CommentRepository interface {
	OwnerLoader

	ListComments(ctx context.Context) ([]models.Comment, error)
	ListCommentsByUser(ctx context.Context, userID int64) ([]models.Comment, error)
	ListCommentDetailsByReviews(ctx context.Context, reviewIDs ...int64) ([]models.CommentDetails, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) error
	DeleteComment(ctx context.Context, commentID int64) error
}
