// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/utils"
	"github.com/MKhiriev/go-review-market/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A timeout of
// zero leaves the resty default in place.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. POST /users answers with plain text, so
// only the status is checked.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/users")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. The user id and expiry are read from the
// token claims without verifying the signature; the server remains the only
// party that validates tokens.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var tokenResp models.TokenResponse
	if err = decode(resp, &tokenResp); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}

	token, err := parseUnverifiedToken(tokenResp.Token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token: %w", err)
	}

	h.SetToken(token.SignedString)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Int64("user_id", token.UserID).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).Delete(path("/users", userID))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := h.getJSON(ctx, "/items", &items); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem implements [ServerAdapter]. The server answers an unknown id with a
// JSON null, which decodes to a nil pointer.
func (h *httpServerAdapter) GetItem(ctx context.Context, itemID int64) (*models.ItemDetails, error) {
	var details *models.ItemDetails
	if err := h.getJSON(ctx, path("/items", itemID), &details); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return details, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = decode(resp, &item); err != nil {
		return models.Item{}, fmt.Errorf("decode create item response: %w", err)
	}
	return item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) (models.Item, error) {
	resp, err := h.authedRequest(ctx).Delete(path("/items", itemID))
	if err != nil {
		return models.Item{}, fmt.Errorf("delete item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = decode(resp, &item); err != nil {
		return models.Item{}, fmt.Errorf("decode delete item response: %w", err)
	}
	return item, nil
}

func (h *httpServerAdapter) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := h.getJSON(ctx, "/reviews", &reviews); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (h *httpServerAdapter) ListUserReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := h.getJSON(ctx, "/users/reviews", &reviews); err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	return reviews, nil
}

func (h *httpServerAdapter) CreateReview(ctx context.Context, req models.CreateReviewRequest) error {
	return h.send(ctx, "create review", resty.MethodPost, "/reviews", req)
}

func (h *httpServerAdapter) UpdateReview(ctx context.Context, reviewID int64, req models.UpdateReviewRequest) error {
	return h.send(ctx, "update review", resty.MethodPut, path("/review", reviewID), req)
}

func (h *httpServerAdapter) DeleteReview(ctx context.Context, reviewID int64) error {
	return h.send(ctx, "delete review", resty.MethodDelete, path("/reviews", reviewID), nil)
}

func (h *httpServerAdapter) ListComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := h.getJSON(ctx, "/comments", &comments); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (h *httpServerAdapter) ListUserComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := h.getJSON(ctx, "/users/comments", &comments); err != nil {
		return nil, fmt.Errorf("list user comments: %w", err)
	}
	return comments, nil
}

func (h *httpServerAdapter) CreateComment(ctx context.Context, req models.CreateCommentRequest) error {
	return h.send(ctx, "create comment", resty.MethodPost, "/comments", req)
}

func (h *httpServerAdapter) UpdateComment(ctx context.Context, commentID int64, req models.UpdateCommentRequest) error {
	return h.send(ctx, "update comment", resty.MethodPut, path("/comment", commentID), req)
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, commentID int64) error {
	return h.send(ctx, "delete comment", resty.MethodDelete, path("/comments", commentID), nil)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// getJSON issues an authenticated GET and decodes the JSON body into dst.
// Public endpoints ignore the header.
func (h *httpServerAdapter) getJSON(ctx context.Context, endpoint string, dst any) error {
	resp, err := h.authedRequest(ctx).Get(endpoint)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decode(resp, dst)
}

// send issues an authenticated request whose response body is not needed.
func (h *httpServerAdapter) send(ctx context.Context, op, method, endpoint string, body any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}

	return mapHTTPError(resp)
}

func decode(resp *resty.Response, dst any) error {
	return json.Unmarshal(resp.Body(), dst)
}

func path(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func parseUnverifiedToken(tokenString string) (models.Token, error) {
	claims := &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Token{}, err
	}

	userID := claims.UserID
	if userID == 0 {
		id, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return models.Token{}, ErrInvalidToken
		}
		userID = id
	}

	token := models.Token{SignedString: tokenString, UserID: userID}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}
