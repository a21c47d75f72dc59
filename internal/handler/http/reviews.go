// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-review-market/internal/app"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/utils"
	"github.com/MKhiriev/go-review-market/models"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.ListReviews(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listReviews", err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.createReview", err)
		return
	}

	var req models.CreateReviewRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createReview", err)
		return
	}

	review, err := h.services.ReviewService.CreateReview(r.Context(), subjectID, req)
	if err != nil {
		writeError(w, r, "*Handler.createReview", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("review_id", review.ReviewID).Msg("review created")

	utils.WriteText(w, app.MsgReviewCreated, http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.updateReview", err)
		return
	}

	reviewID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateReview", err)
		return
	}

	var req models.UpdateReviewRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.updateReview", err)
		return
	}

	if err = h.services.ReviewService.UpdateReview(r.Context(), subjectID, reviewID, req); err != nil {
		writeError(w, r, "*Handler.updateReview", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEditSuccessful}, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteReview", err)
		return
	}

	reviewID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteReview", err)
		return
	}

	if err = h.services.ReviewService.DeleteReview(r.Context(), subjectID, reviewID); err != nil {
		writeError(w, r, "*Handler.deleteReview", err)
		return
	}

	utils.WriteText(w, app.MsgReviewDeleted, http.StatusOK)
}
