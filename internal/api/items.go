package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/econpulse/bookmarkd/internal/auth"
	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/metrics"
	"github.com/econpulse/bookmarkd/internal/store"
)

// itemsHandler provides REST handlers for list membership.
type itemsHandler struct {
	lists       store.ListStoreIface
	memberships store.MembershipStoreIface
	log         logger.Logger
}

func registerItemRoutes(r chi.Router, deps Deps) {
	h := &itemsHandler{lists: deps.Lists, memberships: deps.Memberships, log: deps.Log}
	r.Get("/lists/{id}/items", h.Members)
	r.Put("/lists/{id}/items/{itemID}", h.Add)
	r.Delete("/lists/{id}/items/{itemID}", h.Remove)
	r.Get("/items/{itemID}/lists", h.ListsForItem)
}

// ownedList resolves the list in the URL, scoped to the caller. A list owned
// by another user is indistinguishable from a missing one.
func (h *itemsHandler) ownedList(w http.ResponseWriter, r *http.Request) *store.List {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return nil
	}

	list, err := h.lists.GetByUser(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "list not found", "NOT_FOUND")
			return nil
		}
		h.log.Error("load bookmark list", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil
	}

	return list
}

// Members returns the item IDs in a list.
// GET /api/v1/lists/{id}/items
//
// @Summary      List items in a bookmark list
// @Tags         Items
// @Produce      json
// @Param        id   path      string  true  "List ID"
// @Success      200  {object}  MembersResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists/{id}/items [get]
func (h *itemsHandler) Members(w http.ResponseWriter, r *http.Request) {
	list := h.ownedList(w, r)
	if list == nil {
		return
	}

	items, err := h.memberships.Members(r.Context(), list.ID)
	if err != nil {
		h.log.Error("list members", logger.String("list_id", list.ID), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, &MembersResponse{ListID: list.ID, Items: items, Count: len(items)})
}

// Add puts an item into a list. Adding an item that is already a member
// succeeds without effect.
// PUT /api/v1/lists/{id}/items/{itemID}
//
// @Summary      Add an item to a bookmark list
// @Description  Idempotent; re-adding an existing member is a no-op success.
// @Tags         Items
// @Produce      json
// @Param        id      path  string  true  "List ID"
// @Param        itemID  path  string  true  "Item ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists/{id}/items/{itemID} [put]
func (h *itemsHandler) Add(w http.ResponseWriter, r *http.Request) {
	list := h.ownedList(w, r)
	if list == nil {
		return
	}

	itemID := chi.URLParam(r, "itemID")
	err := h.memberships.Add(r.Context(), list.ID, itemID)
	if err != nil && !errors.Is(err, store.ErrAlreadyInList) {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "list not found", "NOT_FOUND")
			return
		}
		h.log.Error("add member", logger.String("list_id", list.ID), logger.String("item_id", itemID), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if err == nil {
		metrics.MembershipWritesTotal.WithLabelValues("add").Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove takes an item out of a list. Removing an item that is not a member
// succeeds without effect.
// DELETE /api/v1/lists/{id}/items/{itemID}
//
// @Summary      Remove an item from a bookmark list
// @Description  Idempotent; removing a non-member is a no-op success.
// @Tags         Items
// @Produce      json
// @Param        id      path  string  true  "List ID"
// @Param        itemID  path  string  true  "Item ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /lists/{id}/items/{itemID} [delete]
func (h *itemsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	list := h.ownedList(w, r)
	if list == nil {
		return
	}

	itemID := chi.URLParam(r, "itemID")
	err := h.memberships.Remove(r.Context(), list.ID, itemID)
	if err != nil && !errors.Is(err, store.ErrNotInList) {
		h.log.Error("remove member", logger.String("list_id", list.ID), logger.String("item_id", itemID), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if err == nil {
		metrics.MembershipWritesTotal.WithLabelValues("remove").Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListsForItem returns the IDs of the caller's lists that contain an item.
// GET /api/v1/items/{itemID}/lists
//
// @Summary      Find which lists contain an item
// @Tags         Items
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  ItemListsResponse
// @Failure      401     {object}  ErrorResponse
// @Security     BearerToken
// @Router       /items/{itemID}/lists [get]
func (h *itemsHandler) ListsForItem(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	itemID := chi.URLParam(r, "itemID")
	listIDs, err := h.memberships.ListsForItem(r.Context(), user.ID, itemID)
	if err != nil {
		h.log.Error("lists for item", logger.String("item_id", itemID), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, &ItemListsResponse{ItemID: itemID, ListIDs: listIDs})
}
