package services

import (
	"context"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/models"
	"github.com/ggorockee/cityexplorer/pkg/providers"
)

// BusinessSearcher returns businesses near coordinates
type BusinessSearcher interface {
	Search(ctx context.Context, lat, lng float64) ([]providers.Business, error)
}

type ReviewService struct {
	repo     *database.Repository[models.Review]
	provider BusinessSearcher
}

func NewReviewService(db *database.DB, writer *database.Writer, provider BusinessSearcher) *ReviewService {
	return &ReviewService{
		repo:     database.NewRepository[models.Review](db, writer),
		provider: provider,
	}
}

// Get returns reviewed businesses for the location
func (s *ReviewService) Get(ctx context.Context, q CoordinatesQuery) ([]models.Review, error) {
	return byLocation(ctx, "reviews", s.repo, q.LocationID, func(ctx context.Context) ([]models.Review, error) {
		businesses, err := s.provider.Search(ctx, q.Latitude, q.Longitude)
		if err != nil {
			return nil, err
		}
		reviews := make([]models.Review, 0, len(businesses))
		for _, b := range businesses {
			reviews = append(reviews, NewReview(b, q.LocationID))
		}
		return reviews, nil
	})
}
