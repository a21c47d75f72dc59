// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Review is a rated opinion a user leaves on an item.
// Only its author may edit or delete it.
type Review struct {
	ReviewID  int64     `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	ItemID    int64     `json:"itemId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

// ReviewDetails is a review with its author and comments, as returned inside
// [ItemDetails].
type ReviewDetails struct {
	Review
	User     User             `json:"user"`
	Comments []CommentDetails `json:"comments"`
}
