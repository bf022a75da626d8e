package services

import (
	"context"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/models"
	"github.com/ggorockee/cityexplorer/pkg/providers"
)

// ForecastProvider returns the daily forecast for coordinates
type ForecastProvider interface {
	Daily(ctx context.Context, lat, lng float64) ([]providers.DailyForecast, error)
}

type WeatherService struct {
	repo     *database.Repository[models.Forecast]
	provider ForecastProvider
}

func NewWeatherService(db *database.DB, writer *database.Writer, provider ForecastProvider) *WeatherService {
	return &WeatherService{
		repo:     database.NewRepository[models.Forecast](db, writer),
		provider: provider,
	}
}

// Get returns one forecast per day for the location
func (s *WeatherService) Get(ctx context.Context, q CoordinatesQuery) ([]models.Forecast, error) {
	return byLocation(ctx, "weather", s.repo, q.LocationID, func(ctx context.Context) ([]models.Forecast, error) {
		days, err := s.provider.Daily(ctx, q.Latitude, q.Longitude)
		if err != nil {
			return nil, err
		}
		forecasts := make([]models.Forecast, 0, len(days))
		for _, day := range days {
			forecasts = append(forecasts, NewForecast(day, q.LocationID))
		}
		return forecasts, nil
	})
}
