// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-review-market/internal/config"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/service"
	"github.com/MKhiriev/go-review-market/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

const (
	testToken   = "good-token"
	testSubject = int64(7)
)

type fakeAuthService struct {
	registerFn func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{UserID: 1}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.User{UserID: 1}, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return models.Token{SignedString: "signed", UserID: user.UserID}, nil
}

// ParseToken accepts testToken as testSubject by default.
func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseFn != nil {
		return f.parseFn(ctx, tokenString)
	}
	if tokenString == testToken {
		return models.Token{SignedString: tokenString, UserID: testSubject}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type fakeUserService struct {
	deleteFn func(ctx context.Context, subjectID, userID int64) error
}

func (f *fakeUserService) DeleteUser(ctx context.Context, subjectID, userID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, subjectID, userID)
	}
	return nil
}

type fakeItemService struct {
	listFn    func(ctx context.Context) ([]models.Item, error)
	detailsFn func(ctx context.Context, itemID int64) (*models.ItemDetails, error)
	createFn  func(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	deleteFn  func(ctx context.Context, itemID int64) (models.Item, error)
}

func (f *fakeItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []models.Item{}, nil
}

func (f *fakeItemService) GetItemDetails(ctx context.Context, itemID int64) (*models.ItemDetails, error) {
	if f.detailsFn != nil {
		return f.detailsFn(ctx, itemID)
	}
	return nil, nil
}

func (f *fakeItemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return models.Item{}, nil
}

func (f *fakeItemService) DeleteItem(ctx context.Context, itemID int64) (models.Item, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, itemID)
	}
	return models.Item{}, nil
}

type fakeReviewService struct {
	listFn     func(ctx context.Context) ([]models.Review, error)
	listUserFn func(ctx context.Context, userID int64) ([]models.Review, error)
	createFn   func(ctx context.Context, subjectID int64, req models.CreateReviewRequest) (models.Review, error)
	updateFn   func(ctx context.Context, subjectID, reviewID int64, req models.UpdateReviewRequest) error
	deleteFn   func(ctx context.Context, subjectID, reviewID int64) error
}

func (f *fakeReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []models.Review{}, nil
}

func (f *fakeReviewService) ListUserReviews(ctx context.Context, userID int64) ([]models.Review, error) {
	if f.listUserFn != nil {
		return f.listUserFn(ctx, userID)
	}
	return []models.Review{}, nil
}

func (f *fakeReviewService) CreateReview(ctx context.Context, subjectID int64, req models.CreateReviewRequest) (models.Review, error) {
	if f.createFn != nil {
		return f.createFn(ctx, subjectID, req)
	}
	return models.Review{}, nil
}

func (f *fakeReviewService) UpdateReview(ctx context.Context, subjectID, reviewID int64, req models.UpdateReviewRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, subjectID, reviewID, req)
	}
	return nil
}

func (f *fakeReviewService) DeleteReview(ctx context.Context, subjectID, reviewID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, subjectID, reviewID)
	}
	return nil
}

type fakeCommentService struct {
	listFn     func(ctx context.Context) ([]models.Comment, error)
	listUserFn func(ctx context.Context, userID int64) ([]models.Comment, error)
	createFn   func(ctx context.Context, subjectID int64, req models.CreateCommentRequest) (models.Comment, error)
	updateFn   func(ctx context.Context, subjectID, commentID int64, req models.UpdateCommentRequest) error
	deleteFn   func(ctx context.Context, subjectID, commentID int64) error
}

func (f *fakeCommentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []models.Comment{}, nil
}

func (f *fakeCommentService) ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error) {
	if f.listUserFn != nil {
		return f.listUserFn(ctx, userID)
	}
	return []models.Comment{}, nil
}

func (f *fakeCommentService) CreateComment(ctx context.Context, subjectID int64, req models.CreateCommentRequest) (models.Comment, error) {
	if f.createFn != nil {
		return f.createFn(ctx, subjectID, req)
	}
	return models.Comment{}, nil
}

func (f *fakeCommentService) UpdateComment(ctx context.Context, subjectID, commentID int64, req models.UpdateCommentRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, subjectID, commentID, req)
	}
	return nil
}

func (f *fakeCommentService) DeleteComment(ctx context.Context, subjectID, commentID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, subjectID, commentID)
	}
	return nil
}

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.info.BuildVersion()
}

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return f.info
}

// ---- Helpers ----

// newTestServices returns services backed by default fakes. Tests replace
// single services before building the router.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &fakeAuthService{},
		UserService:    &fakeUserService{},
		ItemService:    &fakeItemService{},
		ReviewService:  &fakeReviewService{},
		CommentService: &fakeCommentService{},
		AppInfoService: &fakeAppInfoService{info: models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc")},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

// do sends one request through router. A non-empty token is sent as a
// bearer token.
func do(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
