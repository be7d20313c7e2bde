package stub

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/domain"
)

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ListPayments())
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.CreatePayment(payment))
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	payment, ok := h.store.GetPayment(id)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Payment not found")
		return
	}
	h.writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	updated, ok := h.store.UpdatePayment(id, payment)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Payment not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
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
	payment, ok := h.store.SetPaymentStatus(id, req.Status)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Payment not found")
		return
	}
	h.writeJSON(w, http.StatusOK, payment)
}

// ProcessPayment settles a pending payment; the stub picks SUCCESS or
// FAILED itself, never the caller.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	payment, found, processed := h.store.ProcessPayment(id)
	if !found {
		h.writeText(w, http.StatusNotFound, "Payment not found")
		return
	}
	if !processed {
		h.writeText(w, http.StatusConflict, "Payment is not pending")
		return
	}
	h.writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	if !h.store.DeletePayment(id) {
		h.writeText(w, http.StatusNotFound, "Payment not found")
		return
	}
	h.writeText(w, http.StatusOK, "Payment deleted successfully")
}
