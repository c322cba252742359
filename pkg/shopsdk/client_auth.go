package shopsdk

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token. The backend returns the
// token directly; no refresh token exists in this contract.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// Register creates a new account. Registration does not log the user in;
// a separate Login call is required afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, nil)
	if err != nil {
		return nil, err
	}

	var msgResp MessageResponse
	if err := decodeJSON(resp, &msgResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &msgResp, nil
}
