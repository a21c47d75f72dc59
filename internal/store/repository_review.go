// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/models"
	sq "github.com/Masterminds/squirrel"
)

// reviewRepository is the SQL-backed implementation of [ReviewRepository].
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *reviewRepository) ListReviews(ctx context.Context) ([]models.Review, error) {
	query, args, err := buildSelectReviewsQuery(r.db.builder, nil)
	if err != nil {
		return nil, buildError(ctx, "*reviewRepository.ListReviews", err)
	}

	return queryList(ctx, r.db, "*reviewRepository.ListReviews", query, args, scanReview)
}

func (r *reviewRepository) ListReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	query, args, err := buildSelectReviewsQuery(r.db.builder, sq.Eq{"user_id": userID})
	if err != nil {
		return nil, buildError(ctx, "*reviewRepository.ListReviewsByUser", err)
	}

	return queryList(ctx, r.db, "*reviewRepository.ListReviewsByUser", query, args, scanReview)
}

// ListReviewDetailsByItem returns the reviews of an item joined with their
// authors. Comments are left empty; the caller attaches them.
func (r *reviewRepository) ListReviewDetailsByItem(ctx context.Context, itemID int64) ([]models.ReviewDetails, error) {
	query, args, err := buildSelectReviewDetailsQuery(r.db.builder, itemID)
	if err != nil {
		return nil, buildError(ctx, "*reviewRepository.ListReviewDetailsByItem", err)
	}

	return queryList(ctx, r.db, "*reviewRepository.ListReviewDetailsByItem", query, args, scanReviewDetails)
}

// CreateReview inserts a review. A missing item or user yields
// [ErrReferencedRecordNotFound]; a rating outside 1..5 yields
// [ErrConstraintViolation].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReviewQuery(r.db.builder, review)
	if err != nil {
		return models.Review{}, buildError(ctx, "*reviewRepository.CreateReview", err)
	}

	created, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.CreateReview").
			Int64("item_id", review.ItemID).
			Int64("user_id", review.UserID).
			Msg("review creation failed")
		return models.Review{}, r.db.constraintError(err, ErrConstraintViolation, ErrExecutingQuery)
	}

	return created, nil
}

func (r *reviewRepository) OwnerID(ctx context.Context, reviewID int64) (int64, error) {
	query, args, err := buildSelectReviewOwnerQuery(r.db.builder, reviewID)
	if err != nil {
		return 0, buildError(ctx, "*reviewRepository.OwnerID", err)
	}

	return queryOwner(ctx, r.db, "*reviewRepository.OwnerID", query, args, ErrReviewNotFound)
}

// UpdateReview overwrites text and rating and bumps updated_at.
func (r *reviewRepository) UpdateReview(ctx context.Context, review models.Review) error {
	query, args, err := buildUpdateReviewQuery(r.db.builder, review, r.now().UTC())
	if err != nil {
		return buildError(ctx, "*reviewRepository.UpdateReview", err)
	}

	return execAffectingOne(ctx, r.db, "*reviewRepository.UpdateReview", query, args, ErrReviewNotFound)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	query, args, err := buildDeleteReviewQuery(r.db.builder, reviewID)
	if err != nil {
		return buildError(ctx, "*reviewRepository.DeleteReview", err)
	}

	return execAffectingOne(ctx, r.db, "*reviewRepository.DeleteReview", query, args, ErrReviewNotFound)
}
