// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-review-market/internal/app"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. Chi answers a known path with an unregistered method with
// 405 Method Not Allowed by default; here such requests get the same
// "Not found." response as unknown paths so that route existence is not
// leaked to callers.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.notFound").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route matched")

	utils.WriteText(w, app.MsgNotFound, http.StatusNotFound)
}
