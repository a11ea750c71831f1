package taskhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetTask(ctx context.Context, id int) (*domain.Task, error)
	ListTasksByUser(ctx context.Context, userID int) ([]domain.Task, error)
	CreateTask(ctx context.Context, values map[string]any) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int, patch map[string]any) (*domain.Task, error)
	ToggleTaskCompletion(ctx context.Context, id int) (*domain.Task, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users/{userID}/tasks", h.handleListByUser)
	r.Post("/tasks", h.handleCreate)
	r.Get("/tasks/{taskID}", h.handleGet)
	r.Put("/tasks/{taskID}", h.handleUpdate)
	r.Put("/tasks/{taskID}/toggle", h.handleToggle)
}

func (h *Handler) handleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.URLID(r, "userID")
	if !ok {
		api.Message(w, http.StatusNotFound, "User not found")
		return
	}

	tasks, err := h.Store.ListTasksByUser(r.Context(), userID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	api.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "taskID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.Store.GetTask(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load task")
		return
	}
	if task == nil {
		api.Message(w, http.StatusNotFound, "Task not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, task)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.TaskSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.Store.CreateTask(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create task")
		return
	}
	api.WriteJSON(w, http.StatusCreated, task)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "taskID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Task not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := domain.TaskSchema.ValidatePartial(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.Store.UpdateTask(r.Context(), id, patch)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update task")
		return
	}
	if task == nil {
		api.Message(w, http.StatusNotFound, "Task not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, task)
}

// handleToggle takes no body; it flips completed on the stored task.
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "taskID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.Store.ToggleTaskCompletion(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to toggle task")
		return
	}
	if task == nil {
		api.Message(w, http.StatusNotFound, "Task not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, task)
}
