// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/validators"
	"github.com/MKhiriev/go-review-market/models"
)

// validate runs v over req and wraps a failure in ErrValidation.
func validate(ctx context.Context, v validators.Validator, req any) error {
	if err := v.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// AuthValidationService validates signup and login bodies before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.User{}, err
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.User{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ItemValidationService) ListItems(ctx context.Context) ([]models.Item, error) {
	return v.inner.ListItems(ctx)
}

func (v *ItemValidationService) GetItemDetails(ctx context.Context, itemID int64) (*models.ItemDetails, error) {
	return v.inner.GetItemDetails(ctx, itemID)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.Item{}, err
	}
	return v.inner.CreateItem(ctx, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, itemID int64) (models.Item, error) {
	return v.inner.DeleteItem(ctx, itemID)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}

type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ReviewValidationService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return v.inner.ListReviews(ctx)
}

func (v *ReviewValidationService) ListUserReviews(ctx context.Context, userID int64) ([]models.Review, error) {
	return v.inner.ListUserReviews(ctx, userID)
}

func (v *ReviewValidationService) CreateReview(ctx context.Context, subjectID int64, req models.CreateReviewRequest) (models.Review, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.Review{}, err
	}
	return v.inner.CreateReview(ctx, subjectID, req)
}

func (v *ReviewValidationService) UpdateReview(ctx context.Context, subjectID, reviewID int64, req models.UpdateReviewRequest) error {
	if err := validate(ctx, v.validator, req); err != nil {
		return err
	}
	return v.inner.UpdateReview(ctx, subjectID, reviewID, req)
}

func (v *ReviewValidationService) DeleteReview(ctx context.Context, subjectID, reviewID int64) error {
	return v.inner.DeleteReview(ctx, subjectID, reviewID)
}

func (v *ReviewValidationService) Wrap(wrapped ReviewService) ReviewService {
	v.inner = wrapped
	return v
}

type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
}

func NewCommentValidationService() CommentServiceWrapper {
	return &CommentValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CommentValidationService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return v.inner.ListComments(ctx)
}

func (v *CommentValidationService) ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error) {
	return v.inner.ListUserComments(ctx, userID)
}

func (v *CommentValidationService) CreateComment(ctx context.Context, subjectID int64, req models.CreateCommentRequest) (models.Comment, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.Comment{}, err
	}
	return v.inner.CreateComment(ctx, subjectID, req)
}

func (v *CommentValidationService) UpdateComment(ctx context.Context, subjectID, commentID int64, req models.UpdateCommentRequest) error {
	if err := validate(ctx, v.validator, req); err != nil {
		return err
	}
	return v.inner.UpdateComment(ctx, subjectID, commentID, req)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, subjectID, commentID int64) error {
	return v.inner.DeleteComment(ctx, subjectID, commentID)
}

func (v *CommentValidationService) Wrap(wrapped CommentService) CommentService {
	v.inner = wrapped
	return v
}
