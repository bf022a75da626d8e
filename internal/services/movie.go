package services

import (
	"context"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/logger"
	"github.com/ggorockee/cityexplorer/internal/models"
	"github.com/ggorockee/cityexplorer/pkg/providers"
	"golang.org/x/sync/errgroup"
)

// MovieProvider searches movies and reports the poster image base URL
type MovieProvider interface {
	Search(ctx context.Context, query string) ([]providers.MovieResult, error)
	ImageBaseURL(ctx context.Context, size string) (string, error)
}

type MovieService struct {
	repo       *database.Repository[models.Movie]
	provider   MovieProvider
	posterSize string
}

func NewMovieService(db *database.DB, writer *database.Writer, provider MovieProvider, posterSize string) *MovieService {
	return &MovieService{
		repo:       database.NewRepository[models.Movie](db, writer),
		provider:   provider,
		posterSize: posterSize,
	}
}

// Get returns movies matching the location's search query.
// The image base lookup runs next to the search; if it fails the posters
// keep their relative path and the search still succeeds.
func (s *MovieService) Get(ctx context.Context, q SearchQuery) ([]models.Movie, error) {
	return byLocation(ctx, "movies", s.repo, q.LocationID, func(ctx context.Context) ([]models.Movie, error) {
		log := logger.GetLogger("services.movies")

		var (
			imageBase string
			results   []providers.MovieResult
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			base, err := s.provider.ImageBaseURL(gctx, s.posterSize)
			if err != nil {
				log.Warnw("movie image configuration unavailable", "error", err)
				return nil
			}
			imageBase = base
			return nil
		})
		g.Go(func() error {
			var err error
			results, err = s.provider.Search(gctx, q.SearchQuery)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		movies := make([]models.Movie, 0, len(results))
		for _, m := range results {
			movies = append(movies, NewMovie(m, imageBase, q.LocationID))
		}
		return movies, nil
	})
}
