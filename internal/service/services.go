// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-review-market/internal/config"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ItemService    ItemService
	ReviewService  ReviewService
	CommentService CommentService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repositories. Services that accept
// request bodies are wrapped with their validation layer.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		UserService:    NewUserService(storages.UserRepository, logger),
		ItemService:    NewItemValidationService().Wrap(NewItemService(storages, logger)),
		ReviewService:  NewReviewValidationService().Wrap(NewReviewService(storages.ReviewRepository, logger)),
		CommentService: NewCommentValidationService().Wrap(NewCommentService(storages.CommentRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
