// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-review-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignup() models.SignupRequest {
	return models.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"}
}

func validReview() models.CreateReviewRequest {
	return models.CreateReviewRequest{Text: "great", Rating: 5, ItemID: 1}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Item{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}

func TestRequestValidator_AcceptsValueAndPointer(t *testing.T) {
	v := NewRequestValidator()
	req := validSignup()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func TestRequestValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		wantErr bool
		msg     string
	}{
		{name: "signup ok", obj: validSignup()},
		{name: "signup missing name", obj: models.SignupRequest{Email: "a@example.com", Password: "pw"}, wantErr: true, msg: "name is required"},
		{name: "signup bad email", obj: models.SignupRequest{Name: "A", Email: "nope", Password: "pw"}, wantErr: true, msg: "email must be a valid email address"},
		{name: "signup missing password", obj: models.SignupRequest{Name: "A", Email: "a@example.com"}, wantErr: true, msg: "password is required"},

		{name: "login ok", obj: models.LoginRequest{Email: "a@example.com", Password: "pw"}},
		{name: "login missing email", obj: models.LoginRequest{Password: "pw"}, wantErr: true, msg: "email is required"},

		{name: "item ok", obj: models.CreateItemRequest{Name: "PC", Description: "desk"}},
		{name: "item missing description", obj: models.CreateItemRequest{Name: "PC"}, wantErr: true, msg: "description is required"},

		{name: "review ok", obj: validReview()},
		{name: "review rating zero", obj: models.CreateReviewRequest{Text: "t", Rating: 0, ItemID: 1}, wantErr: true, msg: "rating must be at least 1"},
		{name: "review rating six", obj: models.CreateReviewRequest{Text: "t", Rating: 6, ItemID: 1}, wantErr: true, msg: "rating must be at most 5"},
		{name: "review missing item", obj: models.CreateReviewRequest{Text: "t", Rating: 3}, wantErr: true, msg: "itemId must be greater than 0"},
		{name: "review negative user", obj: models.CreateReviewRequest{Text: "t", Rating: 3, ItemID: 1, UserID: -1}, wantErr: true, msg: "userId must be greater than or equal to 0"},
		{name: "review edit ok", obj: models.UpdateReviewRequest{Text: "t", Rating: 1}},
		{name: "review edit missing text", obj: models.UpdateReviewRequest{Rating: 1}, wantErr: true, msg: "text is required"},

		{name: "comment ok", obj: models.CreateCommentRequest{Text: "t", ReviewID: 1}},
		{name: "comment missing review", obj: models.CreateCommentRequest{Text: "t"}, wantErr: true, msg: "reviewId must be greater than 0"},
		{name: "comment edit ok", obj: &models.UpdateCommentRequest{Text: "t"}},
		{name: "comment edit empty", obj: &models.UpdateCommentRequest{}, wantErr: true, msg: "text is required"},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidField)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
