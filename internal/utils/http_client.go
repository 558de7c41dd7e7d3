package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client shared by API adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// resty's default (none).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}

// WithToken returns a request carrying the bearer token, or a plain request
// when token is empty.
func (c *HTTPClient) WithToken(token string) *resty.Request {
	req := c.R()
	if token != "" {
		req.SetHeader("Authorization", BearerHeader(token))
	}
	return req
}
