package employeehandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetEmployee(ctx context.Context, id int) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, values map[string]any) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int, patch map[string]any) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes claims only the employee resource itself; nested
// subresources (documents, attendance, ...) are registered by their own
// handlers under the same path prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.handleList)
	r.Post("/employees", h.handleCreate)
	r.Get("/employees/{employeeID}", h.handleGet)
	r.Put("/employees/{employeeID}", h.handleUpdate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	api.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	employee, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	if employee == nil {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.EmployeeSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.Store.CreateEmployee(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create employee")
		return
	}
	api.WriteJSON(w, http.StatusCreated, employee)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := domain.EmployeeSchema.ValidatePartial(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.Store.UpdateEmployee(r.Context(), id, patch)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update employee")
		return
	}
	if employee == nil {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, employee)
}
