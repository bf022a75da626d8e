package providers

import (
	"context"
	"net/url"
)

// GeocodeResult is one entry of the geocoding response
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// GeocodeResponse represents the Google Geocoding API response
type GeocodeResponse struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

// GeocodeClient resolves free-text addresses to coordinates
type GeocodeClient struct {
	*Client
	baseURL string
	apiKey  string
}

func NewGeocodeClient(c *Client, baseURL, apiKey string) *GeocodeClient {
	return &GeocodeClient{Client: c, baseURL: baseURL, apiKey: apiKey}
}

// Geocode returns every result for address; an empty slice means no match.
func (g *GeocodeClient) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	q := url.Values{}
	q.Set("key", g.apiKey)
	q.Set("address", address)

	var resp GeocodeResponse
	if err := g.getJSON(ctx, "geocode", g.baseURL+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
