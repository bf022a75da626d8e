package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/gofiber/fiber/v2"
)

var errMissingParam = errors.New("missing or invalid data parameter")

// dataField reads data[name], the bracket form jQuery and qs produce.
func dataField(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.Query("data[" + name + "]"))
}

// jsonData decodes data={...} when the client sent the object as JSON.
func jsonData(c *fiber.Ctx, dest interface{}) bool {
	raw := strings.TrimSpace(c.Query("data"))
	if !strings.HasPrefix(raw, "{") {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// parseLocationQuery returns data as sent; it is both the cache key and the geocoder input.
func parseLocationQuery(c *fiber.Ctx) (string, error) {
	query := c.Query("data")
	if strings.TrimSpace(query) == "" {
		return "", errMissingParam
	}
	return query, nil
}

func parseCoordinatesQuery(c *fiber.Ctx) (services.CoordinatesQuery, error) {
	var q services.CoordinatesQuery
	var body struct {
		LocationID int64    `json:"id"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
	}
	if jsonData(c, &body) {
		if body.LocationID <= 0 || body.Latitude == nil || body.Longitude == nil {
			return q, errMissingParam
		}
		q.LocationID = body.LocationID
		q.Latitude = *body.Latitude
		q.Longitude = *body.Longitude
		return q, nil
	}

	id, err := strconv.ParseInt(dataField(c, "id"), 10, 64)
	if err != nil || id <= 0 {
		return q, errMissingParam
	}
	lat, err := strconv.ParseFloat(dataField(c, "latitude"), 64)
	if err != nil {
		return q, errMissingParam
	}
	lng, err := strconv.ParseFloat(dataField(c, "longitude"), 64)
	if err != nil {
		return q, errMissingParam
	}

	q.LocationID = id
	q.Latitude = lat
	q.Longitude = lng
	return q, nil
}

func parseSearchQuery(c *fiber.Ctx) (services.SearchQuery, error) {
	var q services.SearchQuery
	if jsonData(c, &q) {
		if q.LocationID <= 0 || q.SearchQuery == "" {
			return q, errMissingParam
		}
		return q, nil
	}

	id, err := strconv.ParseInt(dataField(c, "id"), 10, 64)
	if err != nil || id <= 0 {
		return q, errMissingParam
	}
	search := dataField(c, "search_query")
	if search == "" {
		return q, errMissingParam
	}

	q.LocationID = id
	q.SearchQuery = search
	return q, nil
}
