// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/models"
)

type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepository.ListReviews(ctx)
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID int64) ([]models.Review, error) {
	return s.reviewRepository.ListReviewsByUser(ctx, userID)
}

// CreateReview stores a review written by subjectID. A missing item yields
// an error wrapping store.ErrReferencedRecordNotFound.
func (s *reviewService) CreateReview(ctx context.Context, subjectID int64, req models.CreateReviewRequest) (models.Review, error) {
	authorID, err := authorOf(subjectID, req.UserID)
	if err != nil {
		return models.Review{}, err
	}

	review, err := s.reviewRepository.CreateReview(ctx, models.Review{
		Text:   req.Text,
		Rating: req.Rating,
		ItemID: req.ItemID,
		UserID: authorID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.CreateReview").Int64("item_id", req.ItemID).Msg("review creation failed")
		return models.Review{}, constraint(err)
	}

	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, subjectID, reviewID int64, req models.UpdateReviewRequest) error {
	if err := authorizeOwner(ctx, s.reviewRepository, subjectID, reviewID); err != nil {
		return err
	}

	err := s.reviewRepository.UpdateReview(ctx, models.Review{ReviewID: reviewID, Text: req.Text, Rating: req.Rating})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.UpdateReview").Int64("review_id", reviewID).Msg("review update failed")
		return constraint(err)
	}

	return nil
}

// DeleteReview removes the review and its comments.
func (s *reviewService) DeleteReview(ctx context.Context, subjectID, reviewID int64) error {
	if err := authorizeOwner(ctx, s.reviewRepository, subjectID, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepository.DeleteReview(ctx, reviewID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.DeleteReview").Int64("review_id", reviewID).Msg("review deletion failed")
		return notFound(err)
	}

	return nil
}
