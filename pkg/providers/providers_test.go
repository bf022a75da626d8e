package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGeocode(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "geo-key" {
			t.Errorf("Expected api key in query, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("address") != "lynnwood, wa" {
			t.Errorf("Unexpected address %q", r.URL.Query().Get("address"))
		}
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Lynnwood, WA, USA","geometry":{"location":{"lat":47.8209301,"lng":-122.3151314}}}]}`))
	})

	client := NewGeocodeClient(NewClient(0), srv.URL, "geo-key")
	results, err := client.Geocode(context.Background(), "lynnwood, wa")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].FormattedAddress != "Lynnwood, WA, USA" {
		t.Errorf("Unexpected formatted address %q", results[0].FormattedAddress)
	}
	if results[0].Geometry.Location.Lat != 47.8209301 || results[0].Geometry.Location.Lng != -122.3151314 {
		t.Errorf("Unexpected coordinates %+v", results[0].Geometry.Location)
	}
}

func TestForecast_PathKeyAndCoordinates(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast/sky-key/47.6062,-122.3321" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"daily":{"data":[{"time":1540018800,"summary":"Rain in the morning."}]}}`))
	})

	client := NewForecastClient(NewClient(0), srv.URL+"/forecast", "sky-key")
	days, err := client.Daily(context.Background(), 47.6062, -122.3321)
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if len(days) != 1 || days[0].Time != 1540018800 || days[0].Summary != "Rain in the morning." {
		t.Errorf("Unexpected forecast %+v", days)
	}
}

func TestEvents(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "47.6" || q.Get("lon") != "-122.3" || q.Get("page") != "20" || q.Get("sign") != "true" {
			t.Errorf("Unexpected query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"events":[{"link":"https://meetup.com/e/1","name":"Go Night","time":1540018800000,"group":{"name":"Seattle Gophers"}}]}`))
	})

	client := NewEventsClient(NewClient(0), srv.URL, "meetup-key")
	events, err := client.Upcoming(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}
	if len(events) != 1 || events[0].Group.Name != "Seattle Gophers" || events[0].Time != 1540018800000 {
		t.Errorf("Unexpected events %+v", events)
	}
}

func TestBusinessSearch_BearerToken(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer yelp-key" {
			t.Errorf("Expected bearer token, got %q", got)
		}
		w.Write([]byte(`{"businesses":[{"url":"https://yelp.com/biz/a","name":"Pike Place Chowder","rating":4.5,"price":"$$","image_url":"https://img/a.jpg"}]}`))
	})

	client := NewBusinessClient(NewClient(0), srv.URL, "yelp-key")
	businesses, err := client.Search(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(businesses) != 1 || businesses[0].Rating != 4.5 || businesses[0].Price != "$$" {
		t.Errorf("Unexpected businesses %+v", businesses)
	}
}

func TestMovieClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") != "seattle" || r.URL.Query().Get("api_key") != "tmdb" {
			t.Errorf("Unexpected query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"results":[{"title":"Sleepless in Seattle","release_date":"1993-06-24","vote_count":1650,"vote_average":6.6,"popularity":11.2,"poster_path":"/afkYP15OeUOD0tFEmj6VvejuOcz.jpg","overview":"A young boy..."}]}`))
	})
	mux.HandleFunc("/configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"images":{"base_url":"http://image.tmdb.org/t/p/","secure_base_url":"https://image.tmdb.org/t/p/","poster_sizes":["w92","w500"]}}`))
	})
	srv := newTestServer(t, mux.ServeHTTP)

	client := NewMovieClient(NewClient(0), srv.URL+"/search/movie", srv.URL+"/configuration", "tmdb")

	results, err := client.Search(context.Background(), "seattle")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].VoteCount != 1650 || results[0].PosterPath != "/afkYP15OeUOD0tFEmj6VvejuOcz.jpg" {
		t.Errorf("Unexpected results %+v", results)
	}

	base, err := client.ImageBaseURL(context.Background(), "w500")
	if err != nil {
		t.Fatalf("ImageBaseURL failed: %v", err)
	}
	if base != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("Unexpected image base %q", base)
	}
}

func TestTransportError_Status(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := NewGeocodeClient(NewClient(0), srv.URL, "bad")
	_, err := client.Geocode(context.Background(), "nowhere")

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransportError, got %v", err)
	}
	if te.StatusCode != http.StatusUnauthorized || te.Provider != "geocode" {
		t.Errorf("Unexpected error fields %+v", te)
	}
}

func TestTransportError_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewBusinessClient(NewClient(0), url, "key")
	_, err := client.Search(context.Background(), 1, 2)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransportError, got %v", err)
	}
	if te.StatusCode != 0 || te.Unwrap() == nil {
		t.Errorf("Expected transport failure without status, got %+v", te)
	}
}
