// Package google implements the Geocoder port against the Google Maps
// Geocoding API.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

const defaultBaseURL = "https://maps.googleapis.com"

// Geocoder is an HTTP client for the Google Maps Geocoding API.
type Geocoder struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option customizes the geocoder client.
type Option func(*Geocoder)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(g *Geocoder) {
		g.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Geocoder) {
		g.httpClient = client
	}
}

// NewGeocoder creates a Google Maps backed geocoder.
func NewGeocoder(apiKey string, opts ...Option) (*Geocoder, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	g := &Geocoder{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve geocodes a free-text address to coordinates.
func (g *Geocoder) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	endpoint := g.baseURL + "/maps/api/geocode/json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewGatewayError("geocoder", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewGatewayError("geocoder", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, errs.NewGatewayError("geocoder", fmt.Errorf("unexpected status %s", resp.Status))
	}

	var payload geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.GeoPoint{}, errs.NewGatewayError("geocoder", err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return kernel.GeoPoint{}, errs.NewGatewayError("geocoder",
			fmt.Errorf("no result for address (status %s)", payload.Status))
	}

	location := payload.Results[0].Geometry.Location
	point, err := kernel.NewGeoPoint(location.Lat, location.Lng)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewGatewayError("geocoder", err)
	}

	return point, nil
}
