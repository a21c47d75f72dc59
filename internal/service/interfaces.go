// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-review-market/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages existing accounts. subjectID is always the id of the
// authenticated caller.
type UserService interface {
	DeleteUser(ctx context.Context, subjectID, userID int64) error
}

type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)

	// GetItemDetails returns nil, nil when the item does not exist.
	GetItemDetails(ctx context.Context, itemID int64) (*models.ItemDetails, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) (models.Item, error)
}

type ReviewService interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	ListUserReviews(ctx context.Context, userID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, subjectID int64, req models.CreateReviewRequest) (models.Review, error)
	UpdateReview(ctx context.Context, subjectID, reviewID int64, req models.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, subjectID, reviewID int64) error
}

type CommentService interface {
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, subjectID int64, req models.CreateCommentRequest) (models.Comment, error)
	UpdateComment(ctx context.Context, subjectID, commentID int64, req models.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, subjectID, commentID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper, ItemServiceWrapper, ReviewServiceWrapper and
// CommentServiceWrapper define middleware composition for the services.
// Implementations wrap an existing service to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}

type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}
