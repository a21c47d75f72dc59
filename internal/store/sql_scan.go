// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-review-market/models"
	"github.com/mattn/go-sqlite3"
)

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// timestamp scans a time column. pgx always yields time.Time; SQLite yields
// text when the column type is unknown to the driver (RETURNING, joins).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.Password, timestamp{&u.CreatedAt})
	return u, err
}

func scanItem(row rowScanner) (models.Item, error) {
	var i models.Item
	err := row.Scan(&i.ItemID, &i.Name, &i.Description, timestamp{&i.CreatedAt})
	return i, err
}

func reviewDest(r *models.Review) []any {
	return []any{&r.ReviewID, &r.Text, &r.Rating, &r.ItemID, &r.UserID, timestamp{&r.CreatedAt}, timestamp{&r.UpdatedAt}}
}

func commentDest(c *models.Comment) []any {
	return []any{&c.CommentID, &c.Text, &c.ReviewID, &c.UserID, timestamp{&c.CreatedAt}, timestamp{&c.UpdatedAt}}
}

func authorDest(u *models.User) []any {
	return []any{&u.UserID, &u.Name, &u.Email, timestamp{&u.CreatedAt}}
}

func scanReview(row rowScanner) (models.Review, error) {
	var r models.Review
	err := row.Scan(reviewDest(&r)...)
	return r, err
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(commentDest(&c)...)
	return c, err
}

func scanReviewDetails(row rowScanner) (models.ReviewDetails, error) {
	var d models.ReviewDetails
	err := row.Scan(append(reviewDest(&d.Review), authorDest(&d.User)...)...)
	return d, err
}

func scanCommentDetails(row rowScanner) (models.CommentDetails, error) {
	var d models.CommentDetails
	err := row.Scan(append(commentDest(&d.Comment), authorDest(&d.User)...)...)
	return d, err
}
