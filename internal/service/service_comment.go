// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

func (s *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepository.ListComments(ctx)
}

func (s *commentService) ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error) {
	return s.commentRepository.ListCommentsByUser(ctx, userID)
}

func (s *commentService) CreateComment(ctx context.Context, subjectID int64, req models.CreateCommentRequest) (models.Comment, error) {
	authorID, err := authorOf(subjectID, req.UserID)
	if err != nil {
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		Text:     req.Text,
		ReviewID: req.ReviewID,
		UserID:   authorID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.CreateComment").Int64("review_id", req.ReviewID).Msg("comment creation failed")
		return models.Comment{}, constraint(err)
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, subjectID, commentID int64, req models.UpdateCommentRequest) error {
	if err := authorizeOwner(ctx, s.commentRepository, subjectID, commentID); err != nil {
		return err
	}

	err := s.commentRepository.UpdateComment(ctx, models.Comment{CommentID: commentID, Text: req.Text})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.UpdateComment").Int64("comment_id", commentID).Msg("comment update failed")
		return constraint(err)
	}

	return nil
}

func (s *commentService) DeleteComment(ctx context.Context, subjectID, commentID int64) error {
	if err := authorizeOwner(ctx, s.commentRepository, subjectID, commentID); err != nil {
		return err
	}

	if err := s.commentRepository.DeleteComment(ctx, commentID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.DeleteComment").Int64("comment_id", commentID).Msg("comment deletion failed")
		return notFound(err)
	}

	return nil
}
