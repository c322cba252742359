package shopsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is a REST client for the Sweet Shop backend. The zero value is not
// usable; construct with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter smooths bursts of catalog calls client-side so an interactive
	// session cannot hammer the backend. Nil disables limiting.
	Limiter *rate.Limiter

	// TokenSource supplies the current bearer token for each request. An
	// empty return means the request goes out unauthenticated.
	TokenSource func() string

	// OnUnauthorized is invoked once for every 401 response, before the
	// error is returned to the caller. The application wires credential
	// teardown and forced navigation to the login view here. The hook fires
	// regardless of which endpoint produced the 401.
	OnUnauthorized func()
}

// NewClient creates a client for the given base URL (e.g. "http://host/api").
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 10),
	}
}
