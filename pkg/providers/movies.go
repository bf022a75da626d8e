package providers

import (
	"context"
	"net/url"
)

// MovieResult is one entry of the movie search response
type MovieResult struct {
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteCount   int     `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
}

// MovieSearchResponse represents the TMDB search/movie response
type MovieSearchResponse struct {
	Results []MovieResult `json:"results"`
}

// MovieConfiguration represents the TMDB configuration response
type MovieConfiguration struct {
	Images struct {
		BaseURL       string   `json:"base_url"`
		SecureBaseURL string   `json:"secure_base_url"`
		PosterSizes   []string `json:"poster_sizes"`
	} `json:"images"`
}

// MovieClient searches movies and reads the image configuration
type MovieClient struct {
	*Client
	searchURL string
	configURL string
	apiKey    string
}

func NewMovieClient(c *Client, searchURL, configURL, apiKey string) *MovieClient {
	return &MovieClient{Client: c, searchURL: searchURL, configURL: configURL, apiKey: apiKey}
}

// Search returns movies matching query
func (m *MovieClient) Search(ctx context.Context, query string) ([]MovieResult, error) {
	q := url.Values{}
	q.Set("api_key", m.apiKey)
	q.Set("query", query)

	var resp MovieSearchResponse
	if err := m.getJSON(ctx, "movies", m.searchURL+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// ImageBaseURL returns the secure image base joined with size, e.g.
// "https://image.tmdb.org/t/p/" + "w500". Poster paths start with "/".
func (m *MovieClient) ImageBaseURL(ctx context.Context, size string) (string, error) {
	q := url.Values{}
	q.Set("api_key", m.apiKey)

	var conf MovieConfiguration
	if err := m.getJSON(ctx, "movies.configuration", m.configURL+"?"+q.Encode(), nil, &conf); err != nil {
		return "", err
	}
	base := conf.Images.SecureBaseURL
	if base == "" {
		base = conf.Images.BaseURL
	}
	return base + size, nil
}
