package services

import (
	"context"
	"fmt"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/logger"
	"github.com/ggorockee/cityexplorer/internal/models"
	"github.com/ggorockee/cityexplorer/internal/telemetry"
	"github.com/ggorockee/cityexplorer/pkg/providers"
	"go.opentelemetry.io/otel/attribute"
)

// Geocoder resolves a free-text query to candidate locations
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]providers.GeocodeResult, error)
}

type LocationService struct {
	repo     *database.Repository[models.Location]
	geocoder Geocoder
}

func NewLocationService(db *database.DB, writer *database.Writer, geocoder Geocoder) *LocationService {
	return &LocationService{
		repo:     database.NewRepository[models.Location](db, writer).OrderBy("id"),
		geocoder: geocoder,
	}
}

// Get returns the stored location for query (the lowest id when several match), geocoding and inserting it on a miss.
// Unlike the other domains the insert is synchronous: the caller needs the new id.
func (s *LocationService) Get(ctx context.Context, query string) (*models.Location, error) {
	log := logger.GetLogger("services.location")

	ctx, span := telemetry.StartSpan(ctx, "services.location.Get")
	defer span.End()
	span.SetAttributes(attribute.String("search_query", query))

	rows, err := s.repo.FindBy(ctx, "search_query", query)
	if err != nil {
		span.RecordError(err)
		return nil, &StoreError{Op: "select", Table: s.repo.Table(), Err: err}
	}
	if len(rows) > 0 {
		telemetry.RecordCacheLookup(ctx, "location", true)
		log.Debugf("location %q from store (id=%d)", query, rows[0].ID)
		return &rows[0], nil
	}
	telemetry.RecordCacheLookup(ctx, "location", false)

	results, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("location %q: %w", query, ErrNoData)
	}

	location := NewLocation(query, results[0])
	if err := s.repo.Insert(ctx, &location); err != nil {
		span.RecordError(err)
		return nil, &StoreError{Op: "insert", Table: s.repo.Table(), Err: err}
	}
	log.Debugf("location %q from provider (id=%d)", query, location.ID)

	return &location, nil
}
