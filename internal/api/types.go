package api

import "time"

// CreateListRequest is the request body for POST /api/v1/lists.
type CreateListRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// RenameListRequest is the request body for PUT /api/v1/lists/{id}.
type RenameListRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// ListResponse is the JSON representation of a single bookmark list.
type ListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListsResponse is the response for GET /api/v1/lists.
type ListsResponse struct {
	Lists []ListResponse `json:"lists"`
	Count int            `json:"count"`
}

// MembersResponse is the response for GET /api/v1/lists/{id}/items.
type MembersResponse struct {
	ListID string   `json:"list_id"`
	Items  []string `json:"items"`
	Count  int      `json:"count"`
}

// ItemListsResponse is the response for GET /api/v1/items/{itemID}/lists:
// the caller's lists that already contain the item.
type ItemListsResponse struct {
	ItemID  string   `json:"item_id"`
	ListIDs []string `json:"list_ids"`
}
