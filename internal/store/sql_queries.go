// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-review-market/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	usersTable    = models.User{}.TableName()
	itemsTable    = models.Item{}.TableName()
	reviewsTable  = models.Review{}.TableName()
	commentsTable = models.Comment{}.TableName()

	userColumns    = []string{"id", "name", "email", "password", "created_at"}
	itemColumns    = []string{"id", "name", "description", "created_at"}
	reviewColumns  = []string{"id", "text", "rating", "item_id", "user_id", "created_at", "updated_at"}
	commentColumns = []string{"id", "text", "review_id", "user_id", "created_at", "updated_at"}

	// public user columns joined into review and comment details
	authorColumns = []string{"u.id", "u.name", "u.email", "u.created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.Password).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserOwnerQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("id").
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── items ─────────────────────────────────────────────────────────────────────

func buildSelectItemsQuery(b sq.StatementBuilderType, filter sq.Sqlizer) (string, []any, error) {
	q := b.Select(itemColumns...).From(itemsTable)
	if filter != nil {
		q = q.Where(filter)
	}
	return q.OrderBy("id").ToSql()
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert(itemsTable).
		Columns("name", "description").
		Values(item.Name, item.Description).
		Suffix(returning(itemColumns)).
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Delete(itemsTable).
		Where(sq.Eq{"id": itemID}).
		Suffix(returning(itemColumns)).
		ToSql()
}

// ── reviews ───────────────────────────────────────────────────────────────────

func buildSelectReviewsQuery(b sq.StatementBuilderType, filter sq.Sqlizer) (string, []any, error) {
	q := b.Select(reviewColumns...).From(reviewsTable)
	if filter != nil {
		q = q.Where(filter)
	}
	return q.OrderBy("id").ToSql()
}

func buildSelectReviewDetailsQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Select(append(prefixed("r", reviewColumns), authorColumns...)...).
		From(reviewsTable + " r").
		Join(usersTable + " u ON u.id = r.user_id").
		Where(sq.Eq{"r.item_id": itemID}).
		OrderBy("r.id").
		ToSql()
}

func buildInsertReviewQuery(b sq.StatementBuilderType, review models.Review) (string, []any, error) {
	return b.Insert(reviewsTable).
		Columns("text", "rating", "item_id", "user_id").
		Values(review.Text, review.Rating, review.ItemID, review.UserID).
		Suffix(returning(reviewColumns)).
		ToSql()
}

func buildSelectReviewOwnerQuery(b sq.StatementBuilderType, reviewID int64) (string, []any, error) {
	return b.Select("user_id").
		From(reviewsTable).
		Where(sq.Eq{"id": reviewID}).
		ToSql()
}

func buildUpdateReviewQuery(b sq.StatementBuilderType, review models.Review, now time.Time) (string, []any, error) {
	return b.Update(reviewsTable).
		Set("text", review.Text).
		Set("rating", review.Rating).
		Set("updated_at", now).
		Where(sq.Eq{"id": review.ReviewID}).
		ToSql()
}

func buildDeleteReviewQuery(b sq.StatementBuilderType, reviewID int64) (string, []any, error) {
	return b.Delete(reviewsTable).
		Where(sq.Eq{"id": reviewID}).
		ToSql()
}

// ── comments ──────────────────────────────────────────────────────────────────

func buildSelectCommentsQuery(b sq.StatementBuilderType, filter sq.Sqlizer) (string, []any, error) {
	q := b.Select(commentColumns...).From(commentsTable)
	if filter != nil {
		q = q.Where(filter)
	}
	return q.OrderBy("id").ToSql()
}

func buildSelectCommentDetailsQuery(b sq.StatementBuilderType, reviewIDs []int64) (string, []any, error) {
	return b.Select(append(prefixed("c", commentColumns), authorColumns...)...).
		From(commentsTable + " c").
		Join(usersTable + " u ON u.id = c.user_id").
		Where(sq.Eq{"c.review_id": reviewIDs}).
		OrderBy("c.id").
		ToSql()
}

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Insert(commentsTable).
		Columns("text", "review_id", "user_id").
		Values(comment.Text, comment.ReviewID, comment.UserID).
		Suffix(returning(commentColumns)).
		ToSql()
}

func buildSelectCommentOwnerQuery(b sq.StatementBuilderType, commentID int64) (string, []any, error) {
	return b.Select("user_id").
		From(commentsTable).
		Where(sq.Eq{"id": commentID}).
		ToSql()
}

func buildUpdateCommentQuery(b sq.StatementBuilderType, comment models.Comment, now time.Time) (string, []any, error) {
	return b.Update(commentsTable).
		Set("text", comment.Text).
		Set("updated_at", now).
		Where(sq.Eq{"id": comment.CommentID}).
		ToSql()
}

func buildDeleteCommentQuery(b sq.StatementBuilderType, commentID int64) (string, []any, error) {
	return b.Delete(commentsTable).
		Where(sq.Eq{"id": commentID}).
		ToSql()
}
