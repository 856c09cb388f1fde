// Package client is the Go client for the bookmarkd API, used by the
// dashboard's edge services and by the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/econpulse/bookmarkd/internal/api"
)

var (
	// ErrRemote is returned when the server cannot be reached or answers
	// with an unexpected status.
	ErrRemote = errors.New("bookmark service unavailable")

	// ErrNotFound is returned for lists the caller does not own or that do
	// not exist.
	ErrNotFound = errors.New("list not found")

	// ErrListLimit is returned when the server rejects a create because the
	// caller already owns the maximum number of lists.
	ErrListLimit = errors.New("maximum number of bookmark lists reached")

	// ErrDuplicateName is returned when the requested list name is taken.
	ErrDuplicateName = errors.New("a bookmark list with this name already exists")

	// ErrInvalidName is returned when the server rejects the list name.
	ErrInvalidName = errors.New("invalid list name")
)

// Client talks to a bookmarkd server over its REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a Client for the API rooted at baseURL (e.g.
// "https://bookmarks.example.com/api/v1"), authenticating with token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient is like New but uses the supplied http.Client.
func NewWithHTTPClient(baseURL, token string, hc *http.Client) *Client {
	c := New(baseURL, token)
	c.http = hc
	return c
}

// Lists fetches all of the caller's bookmark lists.
func (c *Client) Lists(ctx context.Context) ([]api.ListResponse, error) {
	var resp api.ListsResponse
	if err := c.do(ctx, http.MethodGet, "/lists", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// CreateList creates a new list and returns it.
func (c *Client) CreateList(ctx context.Context, name string) (*api.ListResponse, error) {
	var resp api.ListResponse
	body := api.CreateListRequest{Name: name}
	if err := c.do(ctx, http.MethodPost, "/lists", body, http.StatusCreated, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RenameList changes a list's name.
func (c *Client) RenameList(ctx context.Context, listID, name string) (*api.ListResponse, error) {
	var resp api.ListResponse
	body := api.RenameListRequest{Name: name}
	if err := c.do(ctx, http.MethodPut, "/lists/"+listID, body, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteList removes a list and all its memberships.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+listID, nil, http.StatusNoContent, nil)
}

// Members fetches the item IDs in a list.
func (c *Client) Members(ctx context.Context, listID string) ([]string, error) {
	var resp api.MembersResponse
	if err := c.do(ctx, http.MethodGet, "/lists/"+listID+"/items", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddItem puts an item into a list. Idempotent on the server side.
func (c *Client) AddItem(ctx context.Context, listID, itemID string) error {
	return c.do(ctx, http.MethodPut, "/lists/"+listID+"/items/"+itemID, nil, http.StatusNoContent, nil)
}

// RemoveItem takes an item out of a list. Idempotent on the server side.
func (c *Client) RemoveItem(ctx context.Context, listID, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+listID+"/items/"+itemID, nil, http.StatusNoContent, nil)
}

// ListsForItem fetches the IDs of the caller's lists containing itemID.
func (c *Client) ListsForItem(ctx context.Context, itemID string) ([]string, error) {
	var resp api.ItemListsResponse
	if err := c.do(ctx, http.MethodGet, "/items/"+itemID+"/lists", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.ListIDs, nil
}

// do performs one API call. A nil body sends no payload; a non-nil out
// decodes the response JSON into out when the status matches want.
func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return c.apiError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrRemote, err)
		}
	}
	return nil
}

// apiError maps an error response body onto the client's sentinel errors.
func (c *Client) apiError(resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr api.ErrorResponse
	if err := json.Unmarshal(respBody, &apiErr); err == nil {
		switch apiErr.Code {
		case "NOT_FOUND":
			return ErrNotFound
		case "LIST_LIMIT":
			return ErrListLimit
		case "DUPLICATE_NAME":
			return ErrDuplicateName
		case "INVALID_NAME":
			return fmt.Errorf("%w: %s", ErrInvalidName, apiErr.Error)
		}
	}
	return fmt.Errorf("%w: server returned %d: %s", ErrRemote, resp.StatusCode, respBody)
}
