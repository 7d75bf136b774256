// Package identity implements the IdentityService port against the
// platform's auth service. Suspension deactivates the login; lifting
// the suspension turns it back on.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

// Client is an HTTP client for the identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the identity client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a client for the identity service at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Deactivate turns off the user's ability to authenticate.
func (c *Client) Deactivate(ctx context.Context, userID kernel.UUID) error {
	return c.post(ctx, userID, "deactivate")
}

// Activate restores the user's ability to authenticate.
func (c *Client) Activate(ctx context.Context, userID kernel.UUID) error {
	return c.post(ctx, userID, "activate")
}

func (c *Client) post(ctx context.Context, userID kernel.UUID, action string) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/users/%s/%s", c.baseURL, url.PathEscape(userID.String()), action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return errs.NewGatewayError("identity", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewGatewayError("identity", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewGatewayError("identity", fmt.Errorf("unexpected status %s", resp.Status))
	}

	return nil
}
