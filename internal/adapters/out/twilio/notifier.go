// Package twilio implements the Notifier port against the Twilio
// Messages API. Delivery is best effort; callers log failures and move on.
package twilio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"haul/internal/pkg/errs"
)

const defaultBaseURL = "https://api.twilio.com"

// Notifier is an HTTP client for the Twilio Messages API.
type Notifier struct {
	baseURL    string
	accountSID string
	authToken  string
	fromPhone  string
	httpClient *http.Client
}

// Option customizes the notifier client.
type Option func(*Notifier)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(n *Notifier) {
		n.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.httpClient = client
	}
}

// NewNotifier creates a Twilio-backed SMS notifier.
func NewNotifier(accountSID, authToken, fromPhone string, opts ...Option) (*Notifier, error) {
	if accountSID == "" {
		return nil, errs.NewValueIsRequiredError("accountSID")
	}
	if authToken == "" {
		return nil, errs.NewValueIsRequiredError("authToken")
	}
	if fromPhone == "" {
		return nil, errs.NewValueIsRequiredError("fromPhone")
	}

	n := &Notifier{
		baseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromPhone:  fromPhone,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// Send delivers a text message to the given phone number.
func (n *Notifier) Send(ctx context.Context, phone string, message string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", n.fromPhone)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, url.PathEscape(n.accountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.NewGatewayError("twilio", err)
	}
	req.SetBasicAuth(n.accountSID, n.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.NewGatewayError("twilio", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewGatewayError("twilio", fmt.Errorf("unexpected status %s", resp.Status))
	}

	return nil
}
