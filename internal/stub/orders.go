package stub

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/domain"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ListOrders())
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.CreateOrder(order))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	order, ok := h.store.GetOrder(id)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Order not found")
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	updated, ok := h.store.UpdateOrder(id, order)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Order not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// UpdateOrderStatus applies whatever status the caller sent. The real
// services do not enforce transitions on this endpoint either; the validated
// path lives client-side in the transition table.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	order, ok := h.store.SetOrderStatus(id, req.Status)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Order not found")
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	if !h.store.DeleteOrder(id) {
		h.writeText(w, http.StatusNotFound, "Order not found")
		return
	}
	h.writeText(w, http.StatusOK, "Order deleted successfully")
}
