package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

// PurchaseSweet decrements the stock of a catalog item by one. The backend
// rejects the purchase with a 400 "Out of stock" once quantity hits zero.
func (c *Client) PurchaseSweet(ctx context.Context, id int64) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/inventory/%d/purchase", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var msgResp MessageResponse
	if err := decodeJSON(resp, &msgResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &msgResp, nil
}

// RestockSweet increments the stock of a catalog item.
func (c *Client) RestockSweet(ctx context.Context, id int64) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/inventory/%d/restock", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var msgResp MessageResponse
	if err := decodeJSON(resp, &msgResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &msgResp, nil
}
