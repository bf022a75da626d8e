package services

import (
	"time"

	"github.com/ggorockee/cityexplorer/internal/models"
	"github.com/ggorockee/cityexplorer/pkg/providers"
)

// dateStringLayout is the long calendar form, e.g. "Sat Oct 20 2018 00:00:00 GMT-0700".
// Stored dates keep only the first dateWidth bytes: "Sat Oct 20 2018".
const (
	dateStringLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"
	dateWidth        = 15
)

// FormatDate renders t in the server's local zone truncated to the day.
func FormatDate(t time.Time) string {
	s := t.Local().Format(dateStringLayout)
	if len(s) > dateWidth {
		s = s[:dateWidth]
	}
	return s
}

func NewLocation(query string, r providers.GeocodeResult) models.Location {
	return models.Location{
		SearchQuery:    query,
		FormattedQuery: r.FormattedAddress,
		Latitude:       r.Geometry.Location.Lat,
		Longitude:      r.Geometry.Location.Lng,
	}
}

func NewForecast(day providers.DailyForecast, locationID int64) models.Forecast {
	return models.Forecast{
		Forecast:   day.Summary,
		Time:       FormatDate(time.Unix(day.Time, 0)),
		LocationID: locationID,
	}
}

func NewMeetup(e providers.Event, locationID int64) models.Meetup {
	return models.Meetup{
		Link:         e.Link,
		Name:         e.Name,
		CreationDate: FormatDate(time.UnixMilli(e.Time)),
		Host:         e.Group.Name,
		LocationID:   locationID,
	}
}

func NewReview(b providers.Business, locationID int64) models.Review {
	return models.Review{
		URL:        b.URL,
		Name:       b.Name,
		Rating:     b.Rating,
		Price:      b.Price,
		ImageURL:   b.ImageURL,
		LocationID: locationID,
	}
}

// NewMovie joins imageBaseURL and the poster path as-is; no slash cleanup.
func NewMovie(m providers.MovieResult, imageBaseURL string, locationID int64) models.Movie {
	return models.Movie{
		Title:        m.Title,
		ReleasedOn:   m.ReleaseDate,
		TotalVotes:   m.VoteCount,
		AverageVotes: m.VoteAverage,
		Popularity:   m.Popularity,
		ImageURL:     imageBaseURL + m.PosterPath,
		Overview:     m.Overview,
		LocationID:   locationID,
	}
}
