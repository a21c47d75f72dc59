// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-review-market/internal/service"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// POST /login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		tokenErr   error
		wantStatus int
		wantToken  string
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"email":"ann@example.com","password":"pw"}`,
			wantStatus: http.StatusOK,
			wantToken:  "signed",
		},
		{
			name:       "invalid JSON",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "wrong credentials",
			body:       `{"email":"ann@example.com","password":"nope"}`,
			loginErr:   service.ErrWrongCredentials,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid email or password",
		},
		{
			name:       "validation",
			body:       `{"email":"ann@example.com"}`,
			loginErr:   fmt.Errorf("%w: password is required", service.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed: password is required",
		},
		{
			name:       "token creation failed",
			body:       `{"email":"ann@example.com","password":"pw"}`,
			tokenErr:   service.ErrTokenCreationFailed,
			wantStatus: http.StatusInternalServerError,
			wantError:  "token creation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService = &fakeAuthService{
				loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
					if tt.loginErr != nil {
						return models.User{}, tt.loginErr
					}
					assert.Equal(t, "ann@example.com", req.Email)
					return models.User{UserID: 3}, nil
				},
				createFn: func(_ context.Context, user models.User) (models.Token, error) {
					if tt.tokenErr != nil {
						return models.Token{}, tt.tokenErr
					}
					assert.Equal(t, int64(3), user.UserID)
					return models.Token{SignedString: "signed"}, nil
				},
			}

			rr := do(t, newTestRouter(t, services), http.MethodPost, "/login", tt.body, "")

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantToken != "" {
				var resp models.TokenResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantToken, resp.Token)
				return
			}
			assert.Equal(t, tt.wantError, decodeError(t, rr.Body.Bytes()))
		})
	}
}

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "created",
			body:       `{"name":"Ann","email":"ann@example.com","password":"pw"}`,
			wantStatus: http.StatusOK,
			wantBody:   "User created.",
		},
		{
			name:        "duplicate email",
			body:        `{"name":"Ann","email":"ann@example.com","password":"pw"}`,
			registerErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantBody:    `{"error":"email already exists"}`,
		},
		{
			name:        "validation",
			body:        `{"name":"Ann"}`,
			registerErr: service.ErrValidation,
			wantStatus:  http.StatusBadRequest,
			wantBody:    `{"error":"validation failed"}`,
		},
		{
			name:       "not JSON",
			body:       `name=Ann`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid data provided"}`,
		},
		{
			name:        "storage failure",
			body:        `{"name":"Ann","email":"ann@example.com","password":"pw"}`,
			registerErr: errors.New("disk full"),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    `{"error":"disk full"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService = &fakeAuthService{
				registerFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
					if tt.registerErr != nil {
						return models.User{}, tt.registerErr
					}
					assert.Equal(t, "Ann", req.Name)
					return models.User{UserID: 1}, nil
				},
			}

			rr := do(t, newTestRouter(t, services), http.MethodPost, "/api/users", tt.body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}
