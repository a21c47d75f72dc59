// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a reviewable product.
type Item struct {
	ItemID      int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemDetails is an item together with its reviews, each review carrying its
// author and its comments (with their authors).
//
// The embedded Item is flattened into the JSON object, so the payload reads
// as an item with an additional "reviews" array.
type ItemDetails struct {
	Item
	Reviews []ReviewDetails `json:"reviews"`
}
