package handlers

import (
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service *services.LocationService
}

func NewLocationHandler(service *services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func SetupLocationRoutes(router fiber.Router, service *services.LocationService) {
	h := NewLocationHandler(service)

	router.Get("/location", h.Get)
}

// Get godoc
// @Summary Geocode a search query
// @Tags location
// @Produce json
// @Param data query string true "Free-text address"
// @Success 200 {object} models.Location
// @Failure 500 {string} string
// @Router /location [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	query, err := parseLocationQuery(c)
	if err != nil {
		return badRequest(c)
	}

	location, err := h.service.Get(c.UserContext(), query)
	if err != nil {
		return internalError(c, "location", err)
	}

	return c.JSON(location)
}
