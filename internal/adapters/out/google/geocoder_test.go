package google_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"haul/internal/adapters/out/google"
	"haul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoderForTest(t *testing.T, handler http.HandlerFunc) *google.Geocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	geocoder, err := google.NewGeocoder("key_123", google.WithBaseURL(server.URL))
	require.NoError(t, err)

	return geocoder
}

func TestNewGeocoder_EmptyAPIKey_ReturnsError(t *testing.T) {
	_, err := google.NewGeocoder("")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestResolve_Success(t *testing.T) {
	geocoder := newGeocoderForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "12 Fremont St, Las Vegas", r.URL.Query().Get("address"))
		assert.Equal(t, "key_123", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 36.1699, "lng": -115.1398}}}]
		}`))
	})

	point, err := geocoder.Resolve(context.Background(), "12 Fremont St, Las Vegas")

	require.NoError(t, err)
	assert.InDelta(t, 36.1699, point.Lat(), 0.0001)
	assert.InDelta(t, -115.1398, point.Lng(), 0.0001)
}

func TestResolve_EmptyAddress_ReturnsError(t *testing.T) {
	geocoder := newGeocoderForTest(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := geocoder.Resolve(context.Background(), "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestResolve_ZeroResults_ReturnsGatewayError(t *testing.T) {
	geocoder := newGeocoderForTest(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := geocoder.Resolve(context.Background(), "nowhere at all")

	require.ErrorIs(t, err, errs.ErrGatewayFailure)
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
}

func TestResolve_ServerError_ReturnsGatewayError(t *testing.T) {
	geocoder := newGeocoderForTest(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := geocoder.Resolve(context.Background(), "12 Fremont St, Las Vegas")

	require.ErrorIs(t, err, errs.ErrGatewayFailure)
}
