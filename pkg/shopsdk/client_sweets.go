package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListSweets returns the full catalog.
func (c *Client) ListSweets(ctx context.Context) ([]Sweet, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/sweets", nil, nil)
	if err != nil {
		return nil, err
	}

	var sweets []Sweet
	if err := decodeJSON(resp, &sweets, http.StatusOK); err != nil {
		return nil, err
	}

	return sweets, nil
}

// SearchSweets returns catalog items matching the filter. An empty filter
// behaves like ListSweets.
func (c *Client) SearchSweets(ctx context.Context, filter SearchFilter) ([]Sweet, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/sweets/search", nil, filter.values())
	if err != nil {
		return nil, err
	}

	var sweets []Sweet
	if err := decodeJSON(resp, &sweets, http.StatusOK); err != nil {
		return nil, err
	}

	return sweets, nil
}

// AddSweet creates a catalog item. Admin-only by server policy.
func (c *Client) AddSweet(ctx context.Context, input SweetInput) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/sweets", input, nil)
	if err != nil {
		return nil, err
	}

	var msgResp MessageResponse
	if err := decodeJSON(resp, &msgResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &msgResp, nil
}

// UpdateSweet applies a partial update to a catalog item and returns the
// updated record. Admin-only by server policy.
func (c *Client) UpdateSweet(ctx context.Context, id int64, update SweetUpdate) (*UpdateSweetResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/sweets/%d", id), update, nil)
	if err != nil {
		return nil, err
	}

	var updateResp UpdateSweetResponse
	if err := decodeJSON(resp, &updateResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &updateResp, nil
}

// DeleteSweet removes a catalog item. Admin-only by server policy; the
// backend returns 403 for non-admin callers.
func (c *Client) DeleteSweet(ctx context.Context, id int64) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/sweets/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var msgResp MessageResponse
	if err := decodeJSON(resp, &msgResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &msgResp, nil
}
