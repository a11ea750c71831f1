package activityhandler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

const defaultRecentLimit = 10

type Store interface {
	GetActivity(ctx context.Context, id int) (*domain.Activity, error)
	ListActivitiesByEmployee(ctx context.Context, employeeID int) ([]domain.Activity, error)
	ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, values map[string]any) (*domain.Activity, error)
	UpdateActivityStatus(ctx context.Context, id int, status string) (*domain.Activity, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/activities/recent", h.handleRecent)
	r.Get("/employees/{employeeID}/activities", h.handleListByEmployee)
	r.Post("/activities", h.handleCreate)
	r.Get("/activities/{activityID}", h.handleGet)
	r.Put("/activities/{activityID}/status", h.handleUpdateStatus)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := shared.LimitParam(r, defaultRecentLimit)
	activities, err := h.Store.ListRecentActivities(r.Context(), limit)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list recent activities")
		return
	}
	api.WriteJSON(w, http.StatusOK, activities)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	activities, err := h.Store.ListActivitiesByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list activities")
		return
	}
	api.WriteJSON(w, http.StatusOK, activities)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "activityID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Activity not found")
		return
	}

	activity, err := h.Store.GetActivity(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load activity")
		return
	}
	if activity == nil {
		api.Message(w, http.StatusNotFound, "Activity not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, activity)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.ActivitySchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	activity, err := h.Store.CreateActivity(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create activity")
		return
	}
	api.WriteJSON(w, http.StatusCreated, activity)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "activityID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Activity not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	status, ok := body["status"].(string)
	if !ok || !slices.Contains(domain.ActivityStatuses, status) {
		api.Message(w, http.StatusBadRequest, "status must be one of "+strings.Join(domain.ActivityStatuses, ", "))
		return
	}

	activity, err := h.Store.UpdateActivityStatus(r.Context(), id, status)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update activity status")
		return
	}
	if activity == nil {
		api.Message(w, http.StatusNotFound, "Activity not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, activity)
}
