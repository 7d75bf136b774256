package stripe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"haul/internal/adapters/out/stripe"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayForTest(t *testing.T, handler http.HandlerFunc) *stripe.Gateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := stripe.NewGateway("sk_test_123", stripe.WithBaseURL(server.URL))
	require.NoError(t, err)

	return gateway
}

func TestNewGateway_EmptySecretKey_ReturnsError(t *testing.T) {
	_, err := stripe.NewGateway("")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOpenHold_Success(t *testing.T) {
	gateway := newGatewayForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "12500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "cus_123", r.PostForm.Get("customer"))
		assert.Equal(t, "Couch move", r.PostForm.Get("description"))
		assert.Equal(t, "false", r.PostForm.Get("capture"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ch_1","amount":12500,"captured":false,"status":"succeeded"}`))
	})

	holdRef, err := gateway.OpenHold(context.Background(), "cus_123", 12500, "Couch move")

	require.NoError(t, err)
	assert.Equal(t, "ch_1", holdRef)
}

func TestOpenHold_CardDeclined_ReturnsGatewayError(t *testing.T) {
	gateway := newGatewayForTest(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	})

	_, err := gateway.OpenHold(context.Background(), "cus_123", 12500, "Couch move")

	require.ErrorIs(t, err, errs.ErrGatewayFailure)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestCaptureHold_Success(t *testing.T) {
	gateway := newGatewayForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges/ch_1/capture", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "12500", r.PostForm.Get("amount"))
		assert.Equal(t, "2500", r.PostForm.Get("application_fee_amount"))
		assert.Equal(t, "acct_456", r.PostForm.Get("transfer_data[destination]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ch_1","amount":12500,"captured":true,"status":"succeeded"}`))
	})

	receipt, err := gateway.CaptureHold(context.Background(), "ch_1", 12500, 2500, "acct_456")

	require.NoError(t, err)
	assert.Equal(t, ports.Receipt{HoldRef: "ch_1", Amount: 12500, FeeAmount: 2500}, receipt)
}

func TestCaptureHold_ProcessorRejects_ReturnsGatewayError(t *testing.T) {
	gateway := newGatewayForTest(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Charge ch_1 has already been captured."}}`))
	})

	_, err := gateway.CaptureHold(context.Background(), "ch_1", 12500, 2500, "acct_456")

	require.ErrorIs(t, err, errs.ErrGatewayFailure)
}

func TestRetrieveHold_MapsChargeStates(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected ports.HoldState
	}{
		{
			name:     "open hold",
			body:     `{"id":"ch_1","captured":false,"refunded":false,"status":"succeeded"}`,
			expected: ports.HoldStateOpen,
		},
		{
			name:     "captured hold",
			body:     `{"id":"ch_1","captured":true,"refunded":false,"status":"succeeded"}`,
			expected: ports.HoldStateCaptured,
		},
		{
			name:     "refunded hold",
			body:     `{"id":"ch_1","captured":false,"refunded":true,"status":"succeeded"}`,
			expected: ports.HoldStateVoided,
		},
		{
			name:     "failed charge",
			body:     `{"id":"ch_1","captured":false,"refunded":false,"status":"failed"}`,
			expected: ports.HoldStateVoided,
		},
		{
			name:     "pending charge",
			body:     `{"id":"ch_1","captured":false,"refunded":false,"status":"pending"}`,
			expected: ports.HoldStateUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := tc.body
			gateway := newGatewayForTest(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/charges/ch_1", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			})

			state, err := gateway.RetrieveHold(context.Background(), "ch_1")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, state)
		})
	}
}

func TestRetrieveHold_ServerDown_ReturnsGatewayError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	gateway, err := stripe.NewGateway("sk_test_123", stripe.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = gateway.RetrieveHold(context.Background(), "ch_1")

	require.ErrorIs(t, err, errs.ErrGatewayFailure)
}
