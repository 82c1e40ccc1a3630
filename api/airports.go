package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/gin-gonic/gin"
)

const maxRoutePoints = 1000

type airportResponse struct {
	Code string  `json:"code"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// GeoHandler serves the static airport table and great-circle routes.
type GeoHandler struct{}

func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

func (h *GeoHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports/:code", h.airport)
	router.GET("/route", h.route)
}

// airport godoc
// @Summary  Coordinates of a known airport
// @Param    code path string true "IATA airport code"
// @Success  200 {object} airportResponse
// @Failure  404 {object} errorResponse
// @Router   /api/airports/{code} [get]
func (h *GeoHandler) airport(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	at, ok := geo.LookupAirport(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Airport not found"})
		return
	}
	c.JSON(http.StatusOK, airportResponse{Code: code, Lat: at.Lat, Lng: at.Lng})
}

// route godoc
// @Summary  Great-circle path between two airports
// @Param    from   query string  true  "Origin IATA code"
// @Param    to     query string  true  "Destination IATA code"
// @Param    points query integer false "Number of segments, 1..1000" default(100)
// @Success  200 {object} itinerary.Route
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Failure  422 {object} errorResponse
// @Router   /api/route [get]
func (h *GeoHandler) route(c *gin.Context) {
	from, to := strings.TrimSpace(c.Query("from")), strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Origin and destination airport codes are required"})
		return
	}

	points := geo.DefaultPathPoints
	if raw := c.Query("points"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRoutePoints {
			c.JSON(http.StatusBadRequest, gin.H{"error": "points must be an integer between 1 and 1000"})
			return
		}
		points = n
	}

	route, err := itinerary.PlanRoute(from, to, points)
	switch {
	case errors.Is(err, itinerary.ErrUnknownAirport):
		c.JSON(http.StatusNotFound, gin.H{"error": "Airport not found"})
	case errors.Is(err, geo.ErrAntipodal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Airports are antipodal; the great-circle route is undefined"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, route)
	}
}
