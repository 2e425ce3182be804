package collections

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/routes"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Handler provides HTTP endpoints for collection operations.
type Handler struct {
	sys       System
	validator *validation.Validator
	logger    *slog.Logger
}

// NewHandler creates a Handler with the given system, validator, and logger.
func NewHandler(sys System, validator *validation.Validator, logger *slog.Logger) *Handler {
	return &Handler{
		sys:       sys,
		validator: validator,
		logger:    logger.With("handler", "collections"),
	}
}

// Routes returns the route group definition for collection endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/collections",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/prompts", Handler: h.Prompts},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns every collection.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single collection by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	c, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}

// Prompts returns the prompts of a collection, newest first.
func (h *Handler) Prompts(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Prompts(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create processes a JSON body to create a new collection.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := h.validator.DecodeJSON(r.Body, &cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	c, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, c)
}

// Delete removes a collection and every prompt that references it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
