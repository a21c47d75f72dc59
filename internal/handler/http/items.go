// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-review-market/internal/utils"
	"github.com/MKhiriev/go-review-market/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listItems", err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// getItem answers with the item, its reviews and their comments. An unknown
// id yields 200 with a JSON null body.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getItem", err)
		return
	}

	details, err := h.services.ItemService.GetItemDetails(r.Context(), itemID)
	if err != nil {
		writeError(w, r, "*Handler.getItem", err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createItem", err)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// deleteItem answers with the deleted item.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	item, err := h.services.ItemService.DeleteItem(r.Context(), itemID)
	if err != nil {
		writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
