package attendancehandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetAttendance(ctx context.Context, id int) (*domain.Attendance, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID int) ([]domain.Attendance, error)
	ListAttendanceByDate(ctx context.Context, date time.Time) ([]domain.Attendance, error)
	CreateAttendance(ctx context.Context, values map[string]any) (*domain.Attendance, error)
	UpdateAttendance(ctx context.Context, id int, patch map[string]any) (*domain.Attendance, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/attendance", h.handleListByEmployee)
	r.Get("/attendance/date/{date}", h.handleListByDate)
	r.Post("/attendance", h.handleCreate)
	r.Get("/attendance/{attendanceID}", h.handleGet)
	r.Put("/attendance/{attendanceID}", h.handleUpdate)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	records, err := h.Store.ListAttendanceByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list attendance")
		return
	}
	api.WriteJSON(w, http.StatusOK, records)
}

// handleListByDate returns every employee's record for one calendar day.
func (h *Handler) handleListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		api.Message(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	records, err := h.Store.ListAttendanceByDate(r.Context(), date)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list attendance")
		return
	}
	api.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "attendanceID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Attendance record not found")
		return
	}

	record, err := h.Store.GetAttendance(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load attendance")
		return
	}
	if record == nil {
		api.Message(w, http.StatusNotFound, "Attendance record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.AttendanceSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.Store.CreateAttendance(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create attendance")
		return
	}
	api.WriteJSON(w, http.StatusCreated, record)
}

// handleUpdate is how a check-out lands on an existing check-in record.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "attendanceID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Attendance record not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := domain.AttendanceSchema.ValidatePartial(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.Store.UpdateAttendance(r.Context(), id, patch)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update attendance")
		return
	}
	if record == nil {
		api.Message(w, http.StatusNotFound, "Attendance record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, record)
}
