// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/utils"
	"github.com/MKhiriev/go-review-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "host and port", in: "localhost:3000", want: "http://localhost:3000"},
		{name: "with scheme", in: "https://market.example.com/", want: "https://market.example.com"},
		{name: "trims spaces", in: "  127.0.0.1:3000 ", want: "http://127.0.0.1:3000"},
		{name: "empty", in: "", wantErr: ErrEmptyAddress},
		{name: "no host", in: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter("", 0, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")
	a.SetToken("  abc \n")

	assert.Equal(t, "abc", a.Token())
}

// ── Signup / Login ──────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	req := models.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var got models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "User created.")
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Signup(context.Background(), req)

	assert.NoError(t, err)
}

func TestSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.SignupRequest{Email: "a@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestLogin_Success(t *testing.T) {
	signed, err := utils.GenerateJWTToken("review-market", 42, time.Hour, "key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: signed.SignedString})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, signed.SignedString, token.SignedString)
	assert.WithinDuration(t, signed.ExpiresAt, token.ExpiresAt, time.Second)
	assert.Equal(t, signed.SignedString, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_GarbageToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "not-a-jwt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── Items ───────────────────────────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	want := []models.Item{{ItemID: 1, Name: "Playstation"}, {ItemID: 2, Name: "Xbox"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetItem_Null(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/99", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "null\n")
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetItem(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetItem_Details(t *testing.T) {
	want := models.ItemDetails{
		Item: models.Item{ItemID: 3, Name: "PC"},
		Reviews: []models.ReviewDetails{{
			Review:   models.Review{ReviewID: 5, Rating: 4, ItemID: 3, UserID: 1},
			User:     models.User{UserID: 1, Name: "Alice"},
			Comments: []models.CommentDetails{},
		}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetItem(context.Background(), 3)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Name, got.Name)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "Alice", got.Reviews[0].User.Name)
}

func TestCreateItem_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.CreateItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusOK, models.Item{ItemID: 10, Name: req.Name, Description: req.Description})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	got, err := a.CreateItem(context.Background(), models.CreateItemRequest{Name: "Switch", Description: "console"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ItemID)
	assert.Equal(t, "Switch", got.Name)
}

func TestDeleteItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/items/4", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "item not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteItem(context.Background(), 4)

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Reviews / Comments ──────────────────────────────────────────────────────

func TestWriteRoutes(t *testing.T) {
	tests := []struct {
		name       string
		wantMethod string
		wantPath   string
		call       func(a ServerAdapter) error
	}{
		{
			name: "create review", wantMethod: http.MethodPost, wantPath: "/reviews",
			call: func(a ServerAdapter) error {
				return a.CreateReview(context.Background(), models.CreateReviewRequest{Text: "ok", Rating: 5, ItemID: 1})
			},
		},
		{
			name: "update review", wantMethod: http.MethodPut, wantPath: "/review/2",
			call: func(a ServerAdapter) error {
				return a.UpdateReview(context.Background(), 2, models.UpdateReviewRequest{Text: "meh", Rating: 3})
			},
		},
		{
			name: "delete review", wantMethod: http.MethodDelete, wantPath: "/reviews/2",
			call: func(a ServerAdapter) error { return a.DeleteReview(context.Background(), 2) },
		},
		{
			name: "create comment", wantMethod: http.MethodPost, wantPath: "/comments",
			call: func(a ServerAdapter) error {
				return a.CreateComment(context.Background(), models.CreateCommentRequest{Text: "hi", ReviewID: 2})
			},
		},
		{
			name: "update comment", wantMethod: http.MethodPut, wantPath: "/comment/8",
			call: func(a ServerAdapter) error {
				return a.UpdateComment(context.Background(), 8, models.UpdateCommentRequest{Text: "edited"})
			},
		},
		{
			name: "delete comment", wantMethod: http.MethodDelete, wantPath: "/comments/8",
			call: func(a ServerAdapter) error { return a.DeleteComment(context.Background(), 8) },
		},
		{
			name: "delete user", wantMethod: http.MethodDelete, wantPath: "/users/7",
			call: func(a ServerAdapter) error { return a.DeleteUser(context.Background(), 7) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				_, _ = io.WriteString(w, "ok")
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")

			assert.NoError(t, tt.call(a))
		})
	}
}

func TestUpdateReview_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "access denied"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UpdateReview(context.Background(), 1, models.UpdateReviewRequest{Text: "x", Rating: 1})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListUserComments_Success(t *testing.T) {
	want := []models.Comment{{CommentID: 1, Text: "hi", ReviewID: 2, UserID: 3}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/comments", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListUserComments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListReviews_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "boom"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListReviews(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "access denied", errorMessage([]byte(`{"error":"access denied"}`)))
	assert.Equal(t, "Not found.", errorMessage([]byte("Not found.\n")))
	assert.Equal(t, `{"message":"x"}`, errorMessage([]byte(`{"message":"x"}`)))
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListComments(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
