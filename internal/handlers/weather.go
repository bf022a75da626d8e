package handlers

import (
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WeatherHandler struct {
	service *services.WeatherService
}

func NewWeatherHandler(service *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

func SetupWeatherRoutes(router fiber.Router, service *services.WeatherService) {
	h := NewWeatherHandler(service)

	router.Get("/weather", h.List)
}

// List godoc
// @Summary Daily forecasts for a location
// @Tags weather
// @Produce json
// @Param data[id] query int true "Location ID"
// @Param data[latitude] query number true "Latitude"
// @Param data[longitude] query number true "Longitude"
// @Success 200 {array} models.Forecast
// @Failure 500 {string} string
// @Router /weather [get]
func (h *WeatherHandler) List(c *fiber.Ctx) error {
	q, err := parseCoordinatesQuery(c)
	if err != nil {
		return badRequest(c)
	}

	forecasts, err := h.service.Get(c.UserContext(), q)
	if err != nil {
		return internalError(c, "weather", err)
	}

	return c.JSON(forecasts)
}
