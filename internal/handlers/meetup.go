package handlers

import (
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MeetupHandler struct {
	service *services.MeetupService
}

func NewMeetupHandler(service *services.MeetupService) *MeetupHandler {
	return &MeetupHandler{service: service}
}

func SetupMeetupRoutes(router fiber.Router, service *services.MeetupService) {
	h := NewMeetupHandler(service)

	router.Get("/meetups", h.List)
}

// List godoc
// @Summary Upcoming meetups near a location
// @Tags meetups
// @Produce json
// @Param data[id] query int true "Location ID"
// @Param data[latitude] query number true "Latitude"
// @Param data[longitude] query number true "Longitude"
// @Success 200 {array} models.Meetup
// @Failure 500 {string} string
// @Router /meetups [get]
func (h *MeetupHandler) List(c *fiber.Ctx) error {
	q, err := parseCoordinatesQuery(c)
	if err != nil {
		return badRequest(c)
	}

	meetups, err := h.service.Get(c.UserContext(), q)
	if err != nil {
		return internalError(c, "meetups", err)
	}

	return c.JSON(meetups)
}
