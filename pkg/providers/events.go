package providers

import (
	"context"
	"net/url"
)

// Event is one upcoming event from the events provider
type Event struct {
	Link  string `json:"link"`
	Name  string `json:"name"`
	Time  int64  `json:"time"` // unix milliseconds
	Group struct {
		Name string `json:"name"`
	} `json:"group"`
}

// EventsResponse represents the Meetup upcoming_events response
type EventsResponse struct {
	Events []Event `json:"events"`
}

// EventsClient searches upcoming events around coordinates
type EventsClient struct {
	*Client
	baseURL string
	apiKey  string
}

func NewEventsClient(c *Client, baseURL, apiKey string) *EventsClient {
	return &EventsClient{Client: c, baseURL: baseURL, apiKey: apiKey}
}

// eventsPageSize 한 번에 가져오는 이벤트 수
const eventsPageSize = "20"

// Upcoming returns up to 20 upcoming events near lat,lng
func (e *EventsClient) Upcoming(ctx context.Context, lat, lng float64) ([]Event, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lng))
	q.Set("sign", "true")
	q.Set("key", e.apiKey)
	q.Set("page", eventsPageSize)

	var resp EventsResponse
	if err := e.getJSON(ctx, "meetup", e.baseURL+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}
