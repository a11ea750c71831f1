package documenthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetDocument(ctx context.Context, id int) (*domain.Document, error)
	ListDocumentsByEmployee(ctx context.Context, employeeID int) ([]domain.Document, error)
	CreateDocument(ctx context.Context, values map[string]any) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id int) (bool, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/documents", h.handleListByEmployee)
	r.Post("/documents", h.handleCreate)
	r.Get("/documents/{documentID}", h.handleGet)
	r.Delete("/documents/{documentID}", h.handleDelete)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	documents, err := h.Store.ListDocumentsByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	api.WriteJSON(w, http.StatusOK, documents)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "documentID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Document not found")
		return
	}

	document, err := h.Store.GetDocument(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	if document == nil {
		api.Message(w, http.StatusNotFound, "Document not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, document)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.DocumentSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	document, err := h.Store.CreateDocument(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create document")
		return
	}
	api.WriteJSON(w, http.StatusCreated, document)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "documentID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Document not found")
		return
	}

	deleted, err := h.Store.DeleteDocument(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to delete document")
		return
	}
	if !deleted {
		api.Message(w, http.StatusNotFound, "Document not found")
		return
	}
	api.NoContent(w)
}
