// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/models"
	sq "github.com/Masterminds/squirrel"
)

type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	query, args, err := buildSelectItemsQuery(r.db.builder, nil)
	if err != nil {
		return nil, buildError(ctx, "*itemRepository.ListItems", err)
	}

	return queryList(ctx, r.db, "*itemRepository.ListItems", query, args, scanItem)
}

// GetItem returns [ErrItemNotFound] when the item does not exist.
func (r *itemRepository) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(r.db.builder, sq.Eq{"id": itemID})
	if err != nil {
		return models.Item{}, buildError(ctx, "*itemRepository.GetItem", err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Int64("item_id", itemID).Msg("failed to get item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(r.db.builder, item)
	if err != nil {
		return models.Item{}, buildError(ctx, "*itemRepository.CreateItem", err)
	}

	created, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("item creation failed")
		return models.Item{}, r.db.constraintError(err, ErrConstraintViolation, ErrExecutingQuery)
	}

	return created, nil
}

// DeleteItem removes the item and returns the deleted row. Reviews of the
// item, and their comments, are removed by ON DELETE CASCADE.
func (r *itemRepository) DeleteItem(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.db.builder, itemID)
	if err != nil {
		return models.Item{}, buildError(ctx, "*itemRepository.DeleteItem", err)
	}

	deleted, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", itemID).Msg("item deletion failed")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
