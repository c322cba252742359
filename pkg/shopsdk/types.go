package shopsdk

import (
	"net/url"
	"strconv"
)

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned from a successful login.
type LoginResponse struct {
	// AccessToken is the bearer token to attach to subsequent requests.
	AccessToken string `json:"access_token"`
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ============================================================================
// Message Types
// ============================================================================

// MessageResponse covers the backend's acknowledgement payloads, which use
// either "message" or "msg" depending on the endpoint.
type MessageResponse struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

// Text returns whichever message field the backend populated.
func (m *MessageResponse) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Msg
}

// ============================================================================
// Catalog Types
// ============================================================================

// Sweet is a single catalog item.
type Sweet struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// SweetInput is the body for creating a catalog item. All fields are
// required by the backend.
type SweetInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// SweetUpdate is a partial update for PUT /sweets/{id}. Nil fields are
// omitted and left unchanged server-side.
type SweetUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
}

// UpdateSweetResponse echoes the updated item.
type UpdateSweetResponse struct {
	Message string `json:"message"`
	Sweet   Sweet  `json:"sweet"`
}

// SearchFilter holds the optional catalog search parameters. Zero-valued
// fields are left out of the query string.
type SearchFilter struct {
	Name     string
	Category string
	PriceMin *float64
	PriceMax *float64
}

// values encodes only the filters that are set.
func (f SearchFilter) values() url.Values {
	q := url.Values{}
	if f.Name != "" {
		q.Set("search", f.Name)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.PriceMin != nil {
		q.Set("price_min", strconv.FormatFloat(*f.PriceMin, 'f', -1, 64))
	}
	if f.PriceMax != nil {
		q.Set("price_max", strconv.FormatFloat(*f.PriceMax, 'f', -1, 64))
	}
	return q
}
