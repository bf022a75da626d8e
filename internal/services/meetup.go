package services

import (
	"context"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/models"
	"github.com/ggorockee/cityexplorer/pkg/providers"
)

// EventsProvider returns upcoming events near coordinates
type EventsProvider interface {
	Upcoming(ctx context.Context, lat, lng float64) ([]providers.Event, error)
}

type MeetupService struct {
	repo     *database.Repository[models.Meetup]
	provider EventsProvider
}

func NewMeetupService(db *database.DB, writer *database.Writer, provider EventsProvider) *MeetupService {
	return &MeetupService{
		repo:     database.NewRepository[models.Meetup](db, writer),
		provider: provider,
	}
}

// Get returns upcoming meetups for the location
func (s *MeetupService) Get(ctx context.Context, q CoordinatesQuery) ([]models.Meetup, error) {
	return byLocation(ctx, "meetups", s.repo, q.LocationID, func(ctx context.Context) ([]models.Meetup, error) {
		events, err := s.provider.Upcoming(ctx, q.Latitude, q.Longitude)
		if err != nil {
			return nil, err
		}
		meetups := make([]models.Meetup, 0, len(events))
		for _, e := range events {
			meetups = append(meetups, NewMeetup(e, q.LocationID))
		}
		return meetups, nil
	})
}
