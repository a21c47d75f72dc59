// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/models"
)

type itemService struct {
	itemRepository    store.ItemRepository
	reviewRepository  store.ReviewRepository
	commentRepository store.CommentRepository

	logger *logger.Logger
}

func NewItemService(storages *store.Storages, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository:    storages.ItemRepository,
		reviewRepository:  storages.ReviewRepository,
		commentRepository: storages.CommentRepository,
		logger:            logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.ListItems(ctx)
}

// GetItemDetails assembles the nested read model: the item, its reviews with
// their authors, and each review's comments with their authors. Every
// Reviews and Comments slice is non-nil so it encodes as [].
func (s *itemService) GetItemDetails(ctx context.Context, itemID int64) (*models.ItemDetails, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*itemService.GetItemDetails").Int64("item_id", itemID).Msg("failed to get item")
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	reviews, err := s.reviewRepository.ListReviewDetailsByItem(ctx, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemService.GetItemDetails").Int64("item_id", itemID).Msg("failed to get reviews")
		return nil, fmt.Errorf("failed to get reviews of item: %w", err)
	}

	reviewIDs := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		reviewIDs = append(reviewIDs, r.ReviewID)
	}

	comments, err := s.commentRepository.ListCommentDetailsByReviews(ctx, reviewIDs...)
	if err != nil {
		log.Err(err).Str("func", "*itemService.GetItemDetails").Int64("item_id", itemID).Msg("failed to get comments")
		return nil, fmt.Errorf("failed to get comments of item: %w", err)
	}

	byReview := make(map[int64][]models.CommentDetails, len(reviews))
	for _, c := range comments {
		byReview[c.ReviewID] = append(byReview[c.ReviewID], c)
	}

	details := &models.ItemDetails{Item: item, Reviews: make([]models.ReviewDetails, 0, len(reviews))}
	for _, r := range reviews {
		r.Comments = byReview[r.ReviewID]
		if r.Comments == nil {
			r.Comments = []models.CommentDetails{}
		}
		details.Reviews = append(details.Reviews, r)
	}

	return details, nil
}

func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	item, err := s.itemRepository.CreateItem(ctx, models.Item{Name: req.Name, Description: req.Description})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemService.CreateItem").Msg("item creation failed")
		return models.Item{}, constraint(err)
	}

	return item, nil
}

// DeleteItem removes the item with its reviews and their comments and
// returns the deleted item.
func (s *itemService) DeleteItem(ctx context.Context, itemID int64) (models.Item, error) {
	item, err := s.itemRepository.DeleteItem(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemService.DeleteItem").Int64("item_id", itemID).Msg("item deletion failed")
		return models.Item{}, notFound(err)
	}

	return item, nil
}
