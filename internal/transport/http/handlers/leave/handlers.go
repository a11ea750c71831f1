package leavehandler

import (
	"context"
	"math"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetLeave(ctx context.Context, id int) (*domain.Leave, error)
	ListLeavesByEmployee(ctx context.Context, employeeID int) ([]domain.Leave, error)
	CreateLeave(ctx context.Context, values map[string]any) (*domain.Leave, error)
	UpdateLeaveStatus(ctx context.Context, id int, status string, approvedBy *int) (*domain.Leave, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/leaves", h.handleListByEmployee)
	r.Post("/leaves", h.handleCreate)
	r.Get("/leaves/{leaveID}", h.handleGet)
	r.Put("/leaves/{leaveID}/status", h.handleUpdateStatus)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	leaves, err := h.Store.ListLeavesByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list leave requests")
		return
	}
	api.WriteJSON(w, http.StatusOK, leaves)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "leaveID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Leave request not found")
		return
	}

	leave, err := h.Store.GetLeave(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load leave request")
		return
	}
	if leave == nil {
		api.Message(w, http.StatusNotFound, "Leave request not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, leave)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.LeaveSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	leave, err := h.Store.CreateLeave(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create leave request")
		return
	}
	api.WriteJSON(w, http.StatusCreated, leave)
}

// handleUpdateStatus validates status and approvedBy independently before
// touching storage. Any declared status is accepted regardless of the current
// one; the pending→approved/rejected flow is a front-end convention.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "leaveID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Leave request not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	status, ok := body["status"].(string)
	if !ok || !slices.Contains(domain.LeaveStatuses, status) {
		api.Message(w, http.StatusBadRequest, "status must be one of "+strings.Join(domain.LeaveStatuses, ", "))
		return
	}

	var approvedBy *int
	if raw, present := body["approvedBy"]; present && raw != nil {
		num, ok := raw.(float64)
		if !ok || num != math.Trunc(num) {
			api.Message(w, http.StatusBadRequest, "approvedBy must be an integer")
			return
		}
		value := int(num)
		approvedBy = &value
	}

	leave, err := h.Store.UpdateLeaveStatus(r.Context(), id, status, approvedBy)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update leave status")
		return
	}
	if leave == nil {
		api.Message(w, http.StatusNotFound, "Leave request not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, leave)
}
