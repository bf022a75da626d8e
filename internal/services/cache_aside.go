package services

import (
	"context"
	"fmt"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/logger"
	"github.com/ggorockee/cityexplorer/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm/schema"
)

// CoordinatesQuery identifies a location by id and coordinates
type CoordinatesQuery struct {
	LocationID int64   `json:"id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// SearchQuery identifies a location by id and its original search text
type SearchQuery struct {
	LocationID  int64  `json:"id"`
	SearchQuery string `json:"search_query"`
}

// fetchFunc calls the provider and maps its results to records
type fetchFunc[T any] func(ctx context.Context) ([]T, error)

// byLocation serves the rows cached for locationID, or on a miss fetches,
// maps and returns fresh records while their insert runs in the background.
// Concurrent misses for the same location each fetch and insert.
func byLocation[T schema.Tabler](ctx context.Context, domain string, repo *database.Repository[T], locationID int64, fetch fetchFunc[T]) ([]T, error) {
	log := logger.GetLogger("services." + domain)

	ctx, span := telemetry.StartSpan(ctx, "services."+domain+".Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("location_id", locationID))

	rows, err := repo.FindBy(ctx, "location_id", locationID)
	if err != nil {
		span.RecordError(err)
		return nil, &StoreError{Op: "select", Table: repo.Table(), Err: err}
	}
	if len(rows) > 0 {
		telemetry.RecordCacheLookup(ctx, domain, true)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		log.Debugf("%d rows from store for location %d", len(rows), locationID)
		return rows, nil
	}
	telemetry.RecordCacheLookup(ctx, domain, false)
	span.SetAttributes(attribute.Bool("cache.hit", false))

	records, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s for location %d: %w", domain, locationID, ErrNoData)
	}
	log.Debugf("%d records from provider for location %d", len(records), locationID)

	repo.InsertAllAsync(records)
	return records, nil
}
