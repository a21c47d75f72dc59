// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-review-market/internal/app"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/service"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/internal/utils"
	"github.com/MKhiriev/go-review-market/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	ErrInvalidID:                       http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoUserInContext:                 http.StatusUnauthorized,

	service.ErrValidation:              http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrNotFound:                http.StatusNotFound,

	store.ErrEmailAlreadyExists:       http.StatusConflict,
	store.ErrUserNotFound:             http.StatusNotFound,
	store.ErrItemNotFound:             http.StatusNotFound,
	store.ErrReviewNotFound:           http.StatusNotFound,
	store.ErrCommentNotFound:          http.StatusNotFound,
	store.ErrReferencedRecordNotFound: http.StatusNotFound,
}

// errorMessageMap overrides the error text sent to the client. Errors that
// are not listed are reported with err.Error().
var errorMessageMap = map[error]string{
	ErrInvalidJSON:                      app.MsgInvalidDataProvided,
	ErrInvalidID:                        app.MsgInvalidID,
	ErrEmptyAuthorizationHeader:         app.MsgMissingAuthorization,
	utils.ErrInvalidAuthorizationHeader: app.MsgMissingAuthorization,
	service.ErrWrongCredentials:         app.MsgInvalidEmailOrPassword,
	service.ErrTokenIsExpired:           app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid:  app.MsgTokenIsExpiredOrInvalid,
	service.ErrForbidden:                app.MsgAccessDenied,
	store.ErrEmailAlreadyExists:         app.MsgEmailAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

// writeError answers with the status mapped from err and a JSON error body.
// Server-side failures are logged at error level, client errors at debug.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status)
}
