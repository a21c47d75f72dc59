// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-review-market/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery_Placeholders(t *testing.T) {
	user := models.User{Name: "n", Email: "e", Password: "p"}

	pg, args, err := buildInsertUserQuery(dollar, user)
	require.NoError(t, err)
	assert.Contains(t, pg, "VALUES ($1,$2,$3)")
	assert.Contains(t, pg, "RETURNING id, name, email, password, created_at")
	assert.Equal(t, []any{"n", "e", "p"}, args)

	lite, _, err := buildInsertUserQuery(question, user)
	require.NoError(t, err)
	assert.Contains(t, lite, "VALUES (?,?,?)")
	assert.NotContains(t, lite, "$1")
}

func Test_buildSelectReviewsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     sq.Sqlizer
		wantWhere  bool
		wantArgLen int
	}{
		{name: "all reviews", filter: nil, wantWhere: false, wantArgLen: 0},
		{name: "by user", filter: sq.Eq{"user_id": int64(4)}, wantWhere: true, wantArgLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectReviewsQuery(dollar, tt.filter)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "from reviews")
			assert.Equal(t, tt.wantWhere, strings.Contains(q, "where"))
			assert.True(t, strings.HasSuffix(q, "order by id"))
			assert.Len(t, args, tt.wantArgLen)
		})
	}
}

func Test_buildSelectCommentDetailsQuery_InClause(t *testing.T) {
	query, args, err := buildSelectCommentDetailsQuery(dollar, []int64{1, 2, 3})
	require.NoError(t, err)

	// squirrel generates IN ($1,$2,$3) for a slice.
	assert.Contains(t, query, "c.review_id IN ($1,$2,$3)")
	assert.Contains(t, query, "JOIN users u ON u.id = c.user_id")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, args)
	assert.NotContains(t, strings.ToLower(query), "u.password")
}

func Test_buildSelectReviewDetailsQuery_SelectsAuthorWithoutPassword(t *testing.T) {
	query, args, err := buildSelectReviewDetailsQuery(question, 7)
	require.NoError(t, err)

	assert.Contains(t, query, "r.id, r.text, r.rating, r.item_id, r.user_id, r.created_at, r.updated_at, u.id, u.name, u.email, u.created_at")
	assert.Contains(t, query, "r.item_id = ?")
	assert.NotContains(t, query, "password")
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildDeleteItemQuery_Returning(t *testing.T) {
	query, args, err := buildDeleteItemQuery(dollar, 5)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM items WHERE id = $1 RETURNING id, name, description, created_at", query)
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildOwnerQueries_SelectOnlyOwner(t *testing.T) {
	review, _, err := buildSelectReviewOwnerQuery(dollar, 1)
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id FROM reviews WHERE id = $1", review)

	comment, _, err := buildSelectCommentOwnerQuery(dollar, 1)
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id FROM comments WHERE id = $1", comment)

	user, _, err := buildSelectUserOwnerQuery(dollar, 1)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE id = $1", user)
}
