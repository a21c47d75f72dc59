// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/utils"
	"github.com/MKhiriev/go-review-market/models"
)

// withRecoverer turns a panic in a downstream handler into a 500 response
// carrying the panic message. The stack trace is only logged.
//
// http.ErrAbortHandler is re-panicked so that net/http can abort the
// connection as intended.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel is compared by identity
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecoverer").
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteJSON(w, models.ErrorResponse{Error: fmt.Sprint(rec)}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
