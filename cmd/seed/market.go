// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/adapter"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/service"
	"github.com/MKhiriev/go-review-market/models"
)

var errUnknownUser = errors.New("user was not seeded in this run")

// ─────────────────────────────────────────────
// Database: goes through the service layer, so passwords are hashed and
// requests are validated exactly as the server does it.
// ─────────────────────────────────────────────

type wiper interface {
	WipeAll(ctx context.Context) error
}

type serviceMarket struct {
	db       wiper
	services *service.Services
}

func newServiceMarket(db wiper, services *service.Services) *serviceMarket {
	return &serviceMarket{db: db, services: services}
}

func (m *serviceMarket) Reset(ctx context.Context) error {
	return m.db.WipeAll(ctx)
}

func (m *serviceMarket) AddUser(ctx context.Context, req models.SignupRequest) (int64, error) {
	user, err := m.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		return 0, err
	}
	return user.UserID, nil
}

func (m *serviceMarket) AddItem(ctx context.Context, req models.CreateItemRequest) (int64, error) {
	item, err := m.services.ItemService.CreateItem(ctx, req)
	if err != nil {
		return 0, err
	}
	return item.ItemID, nil
}

func (m *serviceMarket) AddReview(ctx context.Context, userID int64, req models.CreateReviewRequest) error {
	_, err := m.services.ReviewService.CreateReview(ctx, userID, req)
	return err
}

func (m *serviceMarket) Reviews(ctx context.Context) ([]models.Review, error) {
	return m.services.ReviewService.ListReviews(ctx)
}

func (m *serviceMarket) AddComment(ctx context.Context, userID int64, req models.CreateCommentRequest) error {
	_, err := m.services.CommentService.CreateComment(ctx, userID, req)
	return err
}

// ─────────────────────────────────────────────
// REST API: every user signs up and logs in, and each write is sent with
// the token of its author.
// ─────────────────────────────────────────────

type apiMarket struct {
	client adapter.ServerAdapter
	tokens map[int64]string
	logger *logger.Logger
}

func newAPIMarket(client adapter.ServerAdapter, logger *logger.Logger) *apiMarket {
	return &apiMarket{client: client, tokens: make(map[int64]string), logger: logger}
}

// Reset is a no-op: the API offers no way to remove other users' data.
func (m *apiMarket) Reset(ctx context.Context) error {
	m.logger.Warn().Msg("existing data is kept when seeding through the API")
	return nil
}

func (m *apiMarket) AddUser(ctx context.Context, req models.SignupRequest) (int64, error) {
	if err := m.client.Signup(ctx, req); err != nil {
		return 0, fmt.Errorf("signup: %w", err)
	}

	token, err := m.client.Login(ctx, models.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return 0, fmt.Errorf("login: %w", err)
	}

	m.tokens[token.UserID] = token.SignedString
	return token.UserID, nil
}

// AddItem is sent with whichever token was stored last.
func (m *apiMarket) AddItem(ctx context.Context, req models.CreateItemRequest) (int64, error) {
	item, err := m.client.CreateItem(ctx, req)
	if err != nil {
		return 0, err
	}
	return item.ItemID, nil
}

func (m *apiMarket) AddReview(ctx context.Context, userID int64, req models.CreateReviewRequest) error {
	if err := m.as(userID); err != nil {
		return err
	}
	return m.client.CreateReview(ctx, req)
}

func (m *apiMarket) Reviews(ctx context.Context) ([]models.Review, error) {
	return m.client.ListReviews(ctx)
}

func (m *apiMarket) AddComment(ctx context.Context, userID int64, req models.CreateCommentRequest) error {
	if err := m.as(userID); err != nil {
		return err
	}
	return m.client.CreateComment(ctx, req)
}

func (m *apiMarket) as(userID int64) error {
	token, ok := m.tokens[userID]
	if !ok {
		return fmt.Errorf("%w: %d", errUnknownUser, userID)
	}
	m.client.SetToken(token)
	return nil
}
