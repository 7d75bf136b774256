// Package stripe implements the LedgerGateway port against the Stripe
// Charges API. A hold is an uncaptured charge: opened with capture=false
// at acceptance time and captured with an application fee at settlement.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
)

const defaultBaseURL = "https://api.stripe.com"

// Gateway is an HTTP client for the Stripe Charges API.
type Gateway struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Option customizes the gateway client.
type Option func(*Gateway)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(g *Gateway) {
		g.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// NewGateway creates a Stripe-backed ledger gateway.
func NewGateway(secretKey string, opts ...Option) (*Gateway, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}

	g := &Gateway{
		baseURL:    defaultBaseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

type chargeResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Captured bool   `json:"captured"`
	Refunded bool   `json:"refunded"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenHold authorizes the amount against the payer without collecting it.
func (g *Gateway) OpenHold(ctx context.Context, payerRef string, amount int64, description string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Set("customer", payerRef)
	form.Set("description", description)
	form.Set("capture", "false")

	var charge chargeResponse
	if err := g.post(ctx, "/v1/charges", form, &charge); err != nil {
		return "", err
	}

	return charge.ID, nil
}

// CaptureHold collects a previously opened hold, retaining feeAmount for
// the platform and routing the remainder to the payee.
func (g *Gateway) CaptureHold(ctx context.Context, holdRef string, amount int64, feeAmount int64, payeeRef string) (ports.Receipt, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("application_fee_amount", strconv.FormatInt(feeAmount, 10))
	form.Set("transfer_data[destination]", payeeRef)

	var charge chargeResponse
	path := fmt.Sprintf("/v1/charges/%s/capture", url.PathEscape(holdRef))
	if err := g.post(ctx, path, form, &charge); err != nil {
		return ports.Receipt{}, err
	}

	return ports.Receipt{
		HoldRef:   charge.ID,
		Amount:    charge.Amount,
		FeeAmount: feeAmount,
	}, nil
}

// RetrieveHold reports the current state of a hold.
func (g *Gateway) RetrieveHold(ctx context.Context, holdRef string) (ports.HoldState, error) {
	path := fmt.Sprintf("/v1/charges/%s", url.PathEscape(holdRef))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return ports.HoldStateUnknown, errs.NewGatewayError("stripe", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	var charge chargeResponse
	if err = g.do(req, &charge); err != nil {
		return ports.HoldStateUnknown, err
	}

	return holdStateOf(charge), nil
}

func holdStateOf(charge chargeResponse) ports.HoldState {
	switch {
	case charge.Refunded:
		return ports.HoldStateVoided
	case charge.Captured:
		return ports.HoldStateCaptured
	case charge.Status == "succeeded":
		return ports.HoldStateOpen
	case charge.Status == "failed":
		return ports.HoldStateVoided
	default:
		return ports.HoldStateUnknown
	}
}

func (g *Gateway) post(ctx context.Context, path string, form url.Values, out *chargeResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.NewGatewayError("stripe", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return g.do(req, out)
}

func (g *Gateway) do(req *http.Request, out *chargeResponse) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errs.NewGatewayError("stripe", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewGatewayError("stripe", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return errs.NewGatewayError("stripe", fmt.Errorf("%s: %s", resp.Status, apiErr.Error.Message))
		}
		return errs.NewGatewayError("stripe", fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err = json.Unmarshal(body, out); err != nil {
		return errs.NewGatewayError("stripe", err)
	}

	return nil
}
