// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// CRUDHandler serves the six CRUD routes of one resource. The codec
// functions translate between request/response DTOs and domain types.
type CRUDHandler[E ports.Entity, P ports.Patch] struct {
	svc          ports.CRUDService[E, P]
	decodeCreate func(w http.ResponseWriter, r *http.Request) (E, bool)
	decodeUpdate func(w http.ResponseWriter, r *http.Request) (P, bool)
	render       func(E) any
}

// Routes registers the resource's routes relative to its mount point.
func (h *CRUDHandler[E, P]) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/", h.DeleteAll)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Create handles POST /{resource}.
func (h *CRUDHandler[E, P]) Create(w http.ResponseWriter, r *http.Request) {
	entity, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	created, err := h.svc.Create(r.Context(), entity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.render(created))
}

// List handles GET /{resource}. The body is a JSON array.
func (h *CRUDHandler[E, P]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToList(items, h.render))
}

// Get handles GET /{resource}/{id}.
func (h *CRUDHandler[E, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entity, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.render(entity))
}

// Update handles PUT /{resource}/{id} as a partial update.
func (h *CRUDHandler[E, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	patch, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.render(updated))
}

// Delete handles DELETE /{resource}/{id}.
func (h *CRUDHandler[E, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll handles DELETE /{resource}.
func (h *CRUDHandler[E, P]) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAll(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
