package performancehandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetPerformance(ctx context.Context, id int) (*domain.Performance, error)
	ListPerformancesByEmployee(ctx context.Context, employeeID int) ([]domain.Performance, error)
	CreatePerformance(ctx context.Context, values map[string]any) (*domain.Performance, error)
	UpdatePerformance(ctx context.Context, id int, patch map[string]any) (*domain.Performance, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/performance", h.handleListByEmployee)
	r.Post("/performance", h.handleCreate)
	r.Get("/performance/{reviewID}", h.handleGet)
	r.Put("/performance/{reviewID}", h.handleUpdate)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	reviews, err := h.Store.ListPerformancesByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list performance reviews")
		return
	}
	api.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "reviewID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Performance record not found")
		return
	}

	review, err := h.Store.GetPerformance(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load performance review")
		return
	}
	if review == nil {
		api.Message(w, http.StatusNotFound, "Performance record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, review)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.PerformanceSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.Store.CreatePerformance(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create performance review")
		return
	}
	api.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "reviewID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Performance record not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := domain.PerformanceSchema.ValidatePartial(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.Store.UpdatePerformance(r.Context(), id, patch)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update performance review")
		return
	}
	if review == nil {
		api.Message(w, http.StatusNotFound, "Performance record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, review)
}
