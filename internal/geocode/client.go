// Package geocode resolves free-text addresses into coordinates via an
// external geocoding API. The adapter fails closed: any upstream problem
// (unknown address, bad status, transport failure) surfaces as *Error so
// callers can distinguish geocoding failures from their own error kinds.
// The adapter never retries; a caller may retry the whole operation.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/roamly/places-api/internal/config"
	"github.com/roamly/places-api/internal/domain"
)

// HTTPDoer is the interface for executing HTTP requests.
// *http.Client satisfies it; tests substitute their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a geocoding API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPDoer
}

// NewClient creates a new geocoding client.
func NewClient(cfg config.GeocoderConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// Resolve converts an address string into a coordinate pair.
// Returns ErrNoResults (wrapped in *Error) when the upstream knows no
// location for the address.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Location, error) {
	if address == "" {
		return domain.Location{}, &Error{msg: "address is empty"}
	}

	params := url.Values{}
	params.Set("address", address)
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Location{}, &Error{msg: "creating request", err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Location{}, &Error{msg: "executing request", err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Location{}, &Error{msg: "reading response", err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, &Error{msg: fmt.Sprintf("upstream status %d", resp.StatusCode)}
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.Location{}, &Error{msg: "decoding response", err: err}
	}

	switch parsed.Status {
	case statusOK:
		// fall through to result extraction
	case statusZeroResults:
		return domain.Location{}, &Error{msg: "no results for address", err: ErrNoResults}
	default:
		return domain.Location{}, &Error{msg: "upstream status " + parsed.Status}
	}

	if len(parsed.Results) == 0 {
		return domain.Location{}, &Error{msg: "no results for address", err: ErrNoResults}
	}

	loc := parsed.Results[0].Geometry.Location
	return domain.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
}
