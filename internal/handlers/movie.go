package handlers

import (
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MovieHandler struct {
	service *services.MovieService
}

func NewMovieHandler(service *services.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

func SetupMovieRoutes(router fiber.Router, service *services.MovieService) {
	h := NewMovieHandler(service)

	router.Get("/movies", h.List)
}

// List godoc
// @Summary Movies matching a location's search query
// @Tags movies
// @Produce json
// @Param data[id] query int true "Location ID"
// @Param data[search_query] query string true "Original search query"
// @Success 200 {array} models.Movie
// @Failure 500 {string} string
// @Router /movies [get]
func (h *MovieHandler) List(c *fiber.Ctx) error {
	q, err := parseSearchQuery(c)
	if err != nil {
		return badRequest(c)
	}

	movies, err := h.service.Get(c.UserContext(), q)
	if err != nil {
		return internalError(c, "movies", err)
	}

	return c.JSON(movies)
}
