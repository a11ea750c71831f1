package usershandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	CreateUser(ctx context.Context, values map[string]any) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, patch map[string]any) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.handleList)
	r.Post("/users", h.handleCreate)
	r.Get("/users/{userID}", h.handleGet)
	r.Put("/users/{userID}", h.handleUpdate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	api.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "userID")
	if !ok {
		api.Message(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user == nil {
		api.Message(w, http.StatusNotFound, "User not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.UserSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.CreateUser(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	api.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "userID")
	if !ok {
		api.Message(w, http.StatusNotFound, "User not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := domain.UserSchema.ValidatePartial(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.UpdateUser(r.Context(), id, patch)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	if user == nil {
		api.Message(w, http.StatusNotFound, "User not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, user)
}
