// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is a reply a user leaves on a review.
// Only its author may edit or delete it.
type Comment struct {
	CommentID int64     `json:"id"`
	Text      string    `json:"text"`
	ReviewID  int64     `json:"reviewId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentDetails is a comment with its author.
type CommentDetails struct {
	Comment
	User User `json:"user"`
}
