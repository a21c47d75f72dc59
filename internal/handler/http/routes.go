// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The API is served both at the root and under /api.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecoverer, h.withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// must be set before Route so that the /api sub-router inherits them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/version", h.getServerVersion)

	router.Group(h.apiRoutes)
	router.Route("/api", h.apiRoutes)

	return router
}

func (h *Handler) apiRoutes(r chi.Router) {
	// routes without authorization
	r.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/users", h.createUser)

		r.Get("/items", h.listItems)
		r.Get("/items/{id}", h.getItem)
		r.Get("/reviews", h.listReviews)
		r.Get("/comments", h.listComments)
	})

	// routes with authorization
	r.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/reviews", h.listUserReviews)
		r.Get("/users/comments", h.listUserComments)
		r.Delete("/users/{id}", h.deleteUser)

		r.Post("/items", h.createItem)
		r.Delete("/items/{id}", h.deleteItem)

		r.Post("/reviews", h.createReview)
		r.Put("/review/{id}", h.updateReview)
		r.Delete("/reviews/{id}", h.deleteReview)

		r.Post("/comments", h.createComment)
		r.Put("/comment/{id}", h.updateComment)
		r.Delete("/comments/{id}", h.deleteComment)
	})
}
