package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 외부 API 호출 수
	providerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityexplorer_provider_requests_total",
			Help: "Total number of upstream provider requests",
		},
		[]string{"provider", "status"},
	)

	// 외부 API 응답 시간
	providerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cityexplorer_provider_request_duration_seconds",
			Help:    "Upstream provider request latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)
)

// TransportError means a provider was unreachable, answered with a non-2xx
// status or sent a body that could not be decoded.
type TransportError struct {
	Provider   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s API request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client issues GET requests against upstream providers.
// A zero timeout means no client-side deadline.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// getJSON performs one GET and decodes a 2xx JSON body into dest. No retries.
func (c *Client) getJSON(ctx context.Context, provider, rawURL string, header http.Header, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &TransportError{Provider: provider, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	providerRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		providerRequestsTotal.WithLabelValues(provider, "error").Inc()
		return &TransportError{Provider: provider, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	providerRequestsTotal.WithLabelValues(provider, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Provider: provider, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &TransportError{Provider: provider, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
