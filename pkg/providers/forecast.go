package providers

import (
	"context"
	"fmt"
	"net/url"
)

// DailyForecast is one day of the forecast response
type DailyForecast struct {
	Time    int64  `json:"time"` // unix seconds
	Summary string `json:"summary"`
}

// ForecastResponse represents the Dark Sky forecast response
type ForecastResponse struct {
	Daily struct {
		Data []DailyForecast `json:"data"`
	} `json:"daily"`
}

// ForecastClient fetches daily forecasts for coordinates
type ForecastClient struct {
	*Client
	baseURL string
	apiKey  string
}

func NewForecastClient(c *Client, baseURL, apiKey string) *ForecastClient {
	return &ForecastClient{Client: c, baseURL: baseURL, apiKey: apiKey}
}

// Daily returns the daily forecast for lat,lng.
// Coordinates go into the path verbatim: {base}/{key}/{lat},{lng}
func (f *ForecastClient) Daily(ctx context.Context, lat, lng float64) ([]DailyForecast, error) {
	rawURL := fmt.Sprintf("%s/%s/%s,%s", f.baseURL, url.PathEscape(f.apiKey), formatCoord(lat), formatCoord(lng))

	var resp ForecastResponse
	if err := f.getJSON(ctx, "weather", rawURL, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Daily.Data, nil
}
