package stub

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/domain"
)

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ListAccounts())
}

func (h *Handler) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	var account domain.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.CreateAccount(account))
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	account, ok := h.store.GetAccount(id)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Account not found")
		return
	}
	h.writeJSON(w, http.StatusOK, account)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	var account domain.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		h.writeText(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	updated, ok := h.store.UpdateAccount(id, account)
	if !ok {
		h.writeText(w, http.StatusNotFound, "Account not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.writeText(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	if !h.store.DeleteAccount(id) {
		h.writeText(w, http.StatusNotFound, "Account not found")
		return
	}
	h.writeText(w, http.StatusOK, "Account deleted successfully")
}
