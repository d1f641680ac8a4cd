package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "blockplot-backend"

// HTTPClient is a wrapper around the resty.Client HTTP client used for every
// outbound call: token exchange, JWKS and the analytics source.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://example.auth0.com", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/.well-known/jwks.json")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client bound to baseURL. A zero
// timeout leaves resty's default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
