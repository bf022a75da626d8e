package handlers

import (
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	service *services.ReviewService
}

func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// SetupReviewRoutes registers /yelp and its /reviews alias
func SetupReviewRoutes(router fiber.Router, service *services.ReviewService) {
	h := NewReviewHandler(service)

	router.Get("/yelp", h.List)
	router.Get("/reviews", h.List)
}

// List godoc
// @Summary Reviewed businesses near a location
// @Tags reviews
// @Produce json
// @Param data[id] query int true "Location ID"
// @Param data[latitude] query number true "Latitude"
// @Param data[longitude] query number true "Longitude"
// @Success 200 {array} models.Review
// @Failure 500 {string} string
// @Router /yelp [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	q, err := parseCoordinatesQuery(c)
	if err != nil {
		return badRequest(c)
	}

	reviews, err := h.service.Get(c.UserContext(), q)
	if err != nil {
		return internalError(c, "reviews", err)
	}

	return c.JSON(reviews)
}
