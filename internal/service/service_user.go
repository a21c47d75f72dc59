// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/store"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// DeleteUser removes an account. Only the account holder may do so; their
// reviews and comments are removed with it.
func (s *userService) DeleteUser(ctx context.Context, subjectID, userID int64) error {
	if err := authorizeOwner(ctx, s.userRepository, subjectID, userID); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("user deletion failed")
		return notFound(err)
	}

	return nil
}
