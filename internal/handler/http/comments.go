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

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListComments(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listComments", err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.createComment", err)
		return
	}

	var req models.CreateCommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createComment", err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), subjectID, req)
	if err != nil {
		writeError(w, r, "*Handler.createComment", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("comment_id", comment.CommentID).Msg("comment created")

	utils.WriteText(w, app.MsgCommentCreated, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}

	commentID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}

	var req models.UpdateCommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}

	if err = h.services.CommentService.UpdateComment(r.Context(), subjectID, commentID, req); err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEditSuccessful}, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subject(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteComment", err)
		return
	}

	commentID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteComment", err)
		return
	}

	if err = h.services.CommentService.DeleteComment(r.Context(), subjectID, commentID); err != nil {
		writeError(w, r, "*Handler.deleteComment", err)
		return
	}

	utils.WriteText(w, app.MsgCommentDeleted, http.StatusOK)
}
