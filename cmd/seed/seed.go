// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/models"
	"github.com/brianvoe/gofakeit/v7"
)

var seedItems = []models.CreateItemRequest{
	{
		Name: "Playstation",
		Description: "Pellentesque dignissim enim sit amet venenatis urna. " +
			"Sed augue lacus viverra vitae congue eu consequat.",
	},
	{
		Name: "Xbox",
		Description: "Cras fermentum odio eu feugiat. Id volutpat lacus laoreet non curabitur gravida arcu. " +
			"Sit amet aliquam id diam maecenas ultricies mi eget. Nunc faucibus a pellentesque sit amet porttitor.",
	},
	{
		Name: "PC",
		Description: "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt " +
			"ut labore et dolore magna aliqua. Sollicitudin ac orci phasellus egestas tellus rutrum tellus pellentesque.",
	},
}

// market is the write surface the seeder needs. It is served either by the
// service layer on top of the database or by the REST API.
type market interface {
	Reset(ctx context.Context) error
	AddUser(ctx context.Context, req models.SignupRequest) (int64, error)
	AddItem(ctx context.Context, req models.CreateItemRequest) (int64, error)
	AddReview(ctx context.Context, userID int64, req models.CreateReviewRequest) error
	Reviews(ctx context.Context) ([]models.Review, error)
	AddComment(ctx context.Context, userID int64, req models.CreateCommentRequest) error
}

type summary struct {
	Users    int
	Items    int
	Reviews  int
	Comments int
}

// seed wipes the market, then creates users and the console items, a review
// by every user for every item and a comment by every user on every review.
// The email and password of every seeded user are written to creds, one
// "email password" pair per line.
func seed(ctx context.Context, m market, faker *gofakeit.Faker, users int, creds io.Writer) (summary, error) {
	log := logger.FromContext(ctx)
	var s summary

	if err := m.Reset(ctx); err != nil {
		return s, fmt.Errorf("reset: %w", err)
	}

	userIDs := make([]int64, 0, users)
	for range users {
		req := models.SignupRequest{
			Name:     faker.FirstName() + " " + faker.LastName(),
			Email:    faker.Email(),
			Password: faker.Password(true, true, true, false, false, 12),
		}

		id, err := m.AddUser(ctx, req)
		if err != nil {
			return s, fmt.Errorf("add user %s: %w", req.Email, err)
		}
		log.Debug().Int64("user_id", id).Str("email", req.Email).Msg("user seeded")
		if _, err = fmt.Fprintf(creds, "%s %s\n", req.Email, req.Password); err != nil {
			return s, fmt.Errorf("write credentials: %w", err)
		}

		userIDs = append(userIDs, id)
	}
	s.Users = len(userIDs)

	itemIDs := make([]int64, 0, len(seedItems))
	for _, item := range seedItems {
		id, err := m.AddItem(ctx, item)
		if err != nil {
			return s, fmt.Errorf("add item %s: %w", item.Name, err)
		}
		itemIDs = append(itemIDs, id)
	}
	s.Items = len(itemIDs)

	for _, userID := range userIDs {
		for _, itemID := range itemIDs {
			req := models.CreateReviewRequest{
				Text:   faker.LoremIpsumParagraph(1, 4, 10, " "),
				Rating: faker.IntRange(1, 5),
				ItemID: itemID,
			}
			if err := m.AddReview(ctx, userID, req); err != nil {
				return s, fmt.Errorf("add review: %w", err)
			}
			s.Reviews++
		}
	}

	reviews, err := m.Reviews(ctx)
	if err != nil {
		return s, fmt.Errorf("list reviews: %w", err)
	}

	for _, userID := range userIDs {
		for _, review := range reviews {
			req := models.CreateCommentRequest{
				Text:     faker.LoremIpsumSentence(8),
				ReviewID: review.ReviewID,
			}
			if err = m.AddComment(ctx, userID, req); err != nil {
				return s, fmt.Errorf("add comment: %w", err)
			}
			s.Comments++
		}
	}

	return s, nil
}
