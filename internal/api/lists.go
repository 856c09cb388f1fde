package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/econpulse/bookmarkd/internal/auth"
	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/metrics"
	"github.com/econpulse/bookmarkd/internal/store"
)

// listsHandler provides REST handlers for bookmark list management.
type listsHandler struct {
	lists store.ListStoreIface
	log   logger.Logger
}

func registerListRoutes(r chi.Router, deps Deps) {
	h := &listsHandler{lists: deps.Lists, log: deps.Log}
	r.Get("/lists", h.List)
	r.Post("/lists", h.Create)
	r.Put("/lists/{id}", h.Rename)
	r.Delete("/lists/{id}", h.Delete)
}

// List returns the caller's bookmark lists, newest first.
// GET /api/v1/lists
//
// @Summary      List bookmark lists
// @Description  Returns all bookmark lists owned by the caller with item counts.
// @Tags         Lists
// @Produce      json
// @Success      200  {object}  ListsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists [get]
func (h *listsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	lists, err := h.lists.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.log.Error("list bookmark lists", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &ListsResponse{Lists: make([]ListResponse, 0, len(lists)), Count: len(lists)}
	for _, l := range lists {
		resp.Lists = append(resp.Lists, toListResponse(l))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create creates a new bookmark list for the caller.
// POST /api/v1/lists
//
// @Summary      Create a bookmark list
// @Description  Creates a named bookmark list. Users may own at most 10 lists.
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Param        body  body      CreateListRequest  true  "List to create"
// @Success      201   {object}  ListResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists [post]
func (h *listsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, store.ErrNameInvalid.Error(), "INVALID_NAME")
		return
	}

	name, err := store.ValidateListName(req.Name)
	if err != nil {
		metrics.ListCreateRejectedTotal.WithLabelValues("invalid_name").Inc()
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_NAME")
		return
	}

	list, err := h.lists.Create(r.Context(), user.ID, name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrListLimit):
			metrics.ListCreateRejectedTotal.WithLabelValues("limit").Inc()
			writeError(w, http.StatusBadRequest,
				"maximum number of bookmark lists reached (10); delete an existing list first", "LIST_LIMIT")
		case errors.Is(err, store.ErrDuplicateName):
			metrics.ListCreateRejectedTotal.WithLabelValues("duplicate").Inc()
			writeError(w, http.StatusConflict, "a list with this name already exists", "DUPLICATE_NAME")
		default:
			h.log.Error("create bookmark list", logger.String("name", name), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		}
		return
	}

	metrics.ListsCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, toListResponse(list))
}

// Rename changes a list's name.
// PUT /api/v1/lists/{id}
//
// @Summary      Rename a bookmark list
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "List ID"
// @Param        body  body      RenameListRequest  true  "New name"
// @Success      200   {object}  ListResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists/{id} [put]
func (h *listsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req RenameListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, store.ErrNameInvalid.Error(), "INVALID_NAME")
		return
	}

	name, err := store.ValidateListName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_NAME")
		return
	}

	list, err := h.lists.Rename(r.Context(), user.ID, chi.URLParam(r, "id"), name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "list not found", "NOT_FOUND")
		case errors.Is(err, store.ErrDuplicateName):
			writeError(w, http.StatusConflict, "a list with this name already exists", "DUPLICATE_NAME")
		default:
			h.log.Error("rename bookmark list", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		}
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// Delete removes a list and all its memberships.
// DELETE /api/v1/lists/{id}
//
// @Summary      Delete a bookmark list
// @Tags         Lists
// @Produce      json
// @Param        id   path  string  true  "List ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists/{id} [delete]
func (h *listsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	err := h.lists.Delete(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "list not found", "NOT_FOUND")
			return
		}
		h.log.Error("delete bookmark list", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toListResponse(l *store.List) ListResponse {
	return ListResponse{
		ID:        l.ID,
		Name:      l.Name,
		ItemCount: l.ItemCount,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
