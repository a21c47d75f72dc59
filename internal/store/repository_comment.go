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

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *commentRepository) ListComments(ctx context.Context) ([]models.Comment, error) {
	query, args, err := buildSelectCommentsQuery(r.db.builder, nil)
	if err != nil {
		return nil, buildError(ctx, "*commentRepository.ListComments", err)
	}

	return queryList(ctx, r.db, "*commentRepository.ListComments", query, args, scanComment)
}

func (r *commentRepository) ListCommentsByUser(ctx context.Context, userID int64) ([]models.Comment, error) {
	query, args, err := buildSelectCommentsQuery(r.db.builder, sq.Eq{"user_id": userID})
	if err != nil {
		return nil, buildError(ctx, "*commentRepository.ListCommentsByUser", err)
	}

	return queryList(ctx, r.db, "*commentRepository.ListCommentsByUser", query, args, scanComment)
}

// ListCommentDetailsByReviews returns the comments of the given reviews
// joined with their authors. No ids means no comments and no query.
func (r *commentRepository) ListCommentDetailsByReviews(ctx context.Context, reviewIDs ...int64) ([]models.CommentDetails, error) {
	if len(reviewIDs) == 0 {
		return []models.CommentDetails{}, nil
	}

	query, args, err := buildSelectCommentDetailsQuery(r.db.builder, reviewIDs)
	if err != nil {
		return nil, buildError(ctx, "*commentRepository.ListCommentDetailsByReviews", err)
	}

	return queryList(ctx, r.db, "*commentRepository.ListCommentDetailsByReviews", query, args, scanCommentDetails)
}

// CreateComment inserts a comment. A missing review or user yields
// [ErrReferencedRecordNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommentQuery(r.db.builder, comment)
	if err != nil {
		return models.Comment{}, buildError(ctx, "*commentRepository.CreateComment", err)
	}

	created, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Int64("review_id", comment.ReviewID).
			Int64("user_id", comment.UserID).
			Msg("comment creation failed")
		return models.Comment{}, r.db.constraintError(err, ErrConstraintViolation, ErrExecutingQuery)
	}

	return created, nil
}

func (r *commentRepository) OwnerID(ctx context.Context, commentID int64) (int64, error) {
	query, args, err := buildSelectCommentOwnerQuery(r.db.builder, commentID)
	if err != nil {
		return 0, buildError(ctx, "*commentRepository.OwnerID", err)
	}

	return queryOwner(ctx, r.db, "*commentRepository.OwnerID", query, args, ErrCommentNotFound)
}

func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) error {
	query, args, err := buildUpdateCommentQuery(r.db.builder, comment, r.now().UTC())
	if err != nil {
		return buildError(ctx, "*commentRepository.UpdateComment", err)
	}

	return execAffectingOne(ctx, r.db, "*commentRepository.UpdateComment", query, args, ErrCommentNotFound)
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	query, args, err := buildDeleteCommentQuery(r.db.builder, commentID)
	if err != nil {
		return buildError(ctx, "*commentRepository.DeleteComment", err)
	}

	return execAffectingOne(ctx, r.db, "*commentRepository.DeleteComment", query, args, ErrCommentNotFound)
}
