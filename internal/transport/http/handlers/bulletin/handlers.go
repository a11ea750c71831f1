// Package bulletinhandler serves the company bulletin board: announcements
// and calendar events. Both are create-once records with no update or delete
// endpoints.
package bulletinhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

const (
	defaultAnnouncementLimit = 5
	defaultEventLimit        = 5
)

type Store interface {
	GetAnnouncement(ctx context.Context, id int) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	ListRecentAnnouncements(ctx context.Context, limit int) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, values map[string]any) (*domain.Announcement, error)
	GetEvent(ctx context.Context, id int) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error)
	CreateEvent(ctx context.Context, values map[string]any) (*domain.Event, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/announcements", h.handleListAnnouncements)
	r.Get("/announcements/recent", h.handleRecentAnnouncements)
	r.Post("/announcements", h.handleCreateAnnouncement)
	r.Get("/announcements/{announcementID}", h.handleGetAnnouncement)

	r.Get("/events", h.handleListEvents)
	r.Get("/events/upcoming", h.handleUpcomingEvents)
	r.Post("/events", h.handleCreateEvent)
	r.Get("/events/{eventID}", h.handleGetEvent)
}

func (h *Handler) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.Store.ListAnnouncements(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list announcements")
		return
	}
	api.WriteJSON(w, http.StatusOK, announcements)
}

func (h *Handler) handleRecentAnnouncements(w http.ResponseWriter, r *http.Request) {
	limit := shared.LimitParam(r, defaultAnnouncementLimit)
	announcements, err := h.Store.ListRecentAnnouncements(r.Context(), limit)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list recent announcements")
		return
	}
	api.WriteJSON(w, http.StatusOK, announcements)
}

func (h *Handler) handleGetAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "announcementID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Announcement not found")
		return
	}

	announcement, err := h.Store.GetAnnouncement(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load announcement")
		return
	}
	if announcement == nil {
		api.Message(w, http.StatusNotFound, "Announcement not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, announcement)
}

func (h *Handler) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.AnnouncementSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	announcement, err := h.Store.CreateAnnouncement(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create announcement")
		return
	}
	api.WriteJSON(w, http.StatusCreated, announcement)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Store.ListEvents(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	api.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) handleUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	limit := shared.LimitParam(r, defaultEventLimit)
	events, err := h.Store.ListUpcomingEvents(r.Context(), limit)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list upcoming events")
		return
	}
	api.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "eventID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Event not found")
		return
	}

	event, err := h.Store.GetEvent(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load event")
		return
	}
	if event == nil {
		api.Message(w, http.StatusNotFound, "Event not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.EventSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.Store.CreateEvent(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create event")
		return
	}
	api.WriteJSON(w, http.StatusCreated, event)
}
