package stub

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves an in-memory stand-in for the four backend services on one
// listener. Routes and response shapes match what the console expects from
// the real deployment.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func NewRouter(store *Store, logger *zap.Logger) http.Handler {
	h := NewHandler(store, logger)

	r := chi.NewRouter()

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.ListAccounts)
		r.Post("/register", h.RegisterAccount)
		r.Get("/{id}", h.GetAccount)
		r.Put("/{id}", h.UpdateAccount)
		r.Delete("/{id}", h.DeleteAccount)
	})

	r.Route("/catalog-items", func(r chi.Router) {
		r.Get("/", h.ListCatalogItems)
		r.Post("/", h.CreateCatalogItem)
		r.Get("/{id}", h.GetCatalogItem)
		r.Put("/{id}", h.UpdateCatalogItem)
		r.Delete("/{id}", h.DeleteCatalogItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}", h.UpdateOrder)
		r.Patch("/{id}/status", h.UpdateOrderStatus)
		r.Delete("/{id}", h.DeleteOrder)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.ListPayments)
		r.Post("/", h.CreatePayment)
		r.Get("/{id}", h.GetPayment)
		r.Put("/{id}", h.UpdatePayment)
		r.Patch("/{id}/status", h.UpdatePaymentStatus)
		r.Post("/{id}/process", h.ProcessPayment)
		r.Delete("/{id}", h.DeletePayment)
	})

	return r
}

func (h *Handler) pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

type statusRequest struct {
	Status string `json:"status"`
}
