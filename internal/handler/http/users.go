// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-review-market/internal/app"
	"github.com/MKhiriev/go-review-market/internal/utils"
)

func (h *Handler) listUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.listUserReviews", err)
		return
	}

	reviews, err := h.services.ReviewService.ListUserReviews(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listUserReviews", err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) listUserComments(w http.ResponseWriter, r *http.Request) {
	userID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.listUserComments", err)
		return
	}

	comments, err := h.services.CommentService.ListUserComments(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listUserComments", err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// deleteUser removes the caller's own account.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), subjectID, userID); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	utils.WriteText(w, app.MsgUserDeleted, http.StatusOK)
}
