// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-review-market/internal/logger"

// Storages groups every repository backed by one [DB].
type Storages struct {
	UserRepository    UserRepository
	ItemRepository    ItemRepository
	ReviewRepository  ReviewRepository
	CommentRepository CommentRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ItemRepository:    NewItemRepository(db, logger),
		ReviewRepository:  NewReviewRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
	}
}
