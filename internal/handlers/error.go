package handlers

import (
	"errors"

	"github.com/ggorockee/cityexplorer/internal/logger"
	"github.com/ggorockee/cityexplorer/internal/middleware"
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/ggorockee/cityexplorer/pkg/providers"
	"github.com/gofiber/fiber/v2"
)

// Fixed response bodies. Clients never see the cause.
const (
	MessageInternalError = "Sorry, something went wrong"
	MessageBadRequest    = "Invalid request"
	MessageRouteNotFound = "Sorry, that route does not exist"
)

// ErrorHandler is the custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).SendString(e.Message)
	}
	return internalError(c, "app", err)
}

// internalError logs err with its kind and collapses it into a plain 500.
func internalError(c *fiber.Ctx, domain string, err error) error {
	log := logger.GetLogger("handlers." + domain)
	fields := []interface{}{
		"path", c.Path(),
		"request_id", middleware.RequestID(c),
		"error", err,
	}

	var storeErr *services.StoreError
	var transportErr *providers.TransportError
	switch {
	case errors.Is(err, services.ErrNoData):
		fields = append(fields, "kind", "no_data")
	case errors.As(err, &storeErr):
		fields = append(fields, "kind", "store", "table", storeErr.Table, "sqlstate", storeErr.SQLState())
	case errors.As(err, &transportErr):
		fields = append(fields, "kind", "transport", "provider", transportErr.Provider, "status", transportErr.StatusCode)
	default:
		fields = append(fields, "kind", "unknown")
	}
	log.Errorw("request failed", fields...)

	return c.Status(fiber.StatusInternalServerError).SendString(MessageInternalError)
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).SendString(MessageBadRequest)
}

// NotFound answers unknown paths with a fixed body and status 200
func NotFound(c *fiber.Ctx) error {
	return c.SendString(MessageRouteNotFound)
}
