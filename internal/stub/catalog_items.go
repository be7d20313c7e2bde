package stub

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/domain"
)

func (h *Handler) ListCatalogItems(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ListCatalogItems())
}

func (h *Handler) CreateCatalogItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.CreateCatalogItem(item))
}

func (h *Handler) GetCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	item, ok := h.store.GetCatalogItem(id)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Catalog item not found")
		return
	}
	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) UpdateCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	var item domain.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	updated, ok := h.store.UpdateCatalogItem(id, item)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Catalog item not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	if !h.store.DeleteCatalogItem(id) {
		h.writeText(w, http.StatusNotFound, "Catalog item not found")
		return
	}
	h.writeText(w, http.StatusOK, "Catalog item deleted successfully")
}
