package providers

import (
	"context"
	"net/http"
	"net/url"
)

// Business is one result of the business search
type Business struct {
	URL      string  `json:"url"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Price    string  `json:"price"`
	ImageURL string  `json:"image_url"`
}

// BusinessSearchResponse represents the Yelp Fusion businesses/search response
type BusinessSearchResponse struct {
	Businesses []Business `json:"businesses"`
}

// BusinessClient searches businesses near coordinates (Bearer token auth)
type BusinessClient struct {
	*Client
	baseURL string
	apiKey  string
}

func NewBusinessClient(c *Client, baseURL, apiKey string) *BusinessClient {
	return &BusinessClient{Client: c, baseURL: baseURL, apiKey: apiKey}
}

// Search returns businesses near lat,lng
func (b *BusinessClient) Search(ctx context.Context, lat, lng float64) ([]Business, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(lat))
	q.Set("longitude", formatCoord(lng))

	header := http.Header{}
	header.Set("Authorization", "Bearer "+b.apiKey)

	var resp BusinessSearchResponse
	if err := b.getJSON(ctx, "yelp", b.baseURL+"?"+q.Encode(), header, &resp); err != nil {
		return nil, err
	}
	return resp.Businesses, nil
}
