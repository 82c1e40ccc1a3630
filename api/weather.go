package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/service/forecast"
	"github.com/Domenick1991/flighttracker/internal/weather"
	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	service forecast.WeatherUseCase
}

func NewWeatherHandler(service forecast.WeatherUseCase) *WeatherHandler {
	return &WeatherHandler{service: service}
}

func (h *WeatherHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.current)
}

// current godoc
// @Summary  Current conditions at a coordinate, imperial units
// @Param    lat query number true "Latitude"
// @Param    lon query number true "Longitude"
// @Success  200 {object} domain.Weather
// @Failure  400 {object} errorResponse
// @Failure  401 {object} errorResponse
// @Failure  500 {object} errorResponse
// @Router   /api/weather [get]
func (h *WeatherHandler) current(c *gin.Context) {
	latRaw, lonRaw := c.Query("lat"), c.Query("lon")
	if latRaw == "" || lonRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required"})
		return
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lon, lonErr := strconv.ParseFloat(lonRaw, 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude or longitude"})
		return
	}

	w, err := h.service.Current(c.Request.Context(), geo.Coordinate{Lat: lat, Lng: lon})
	switch {
	case errors.Is(err, forecast.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude or longitude"})
	case errors.Is(err, weather.ErrPendingActivation):
		log.Printf("weather: request_id=%s weather api key not activated yet, new keys can take up to 2 hours", RequestID(c))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key pending activation"})
	case err != nil:
		log.Printf("weather: request_id=%s lat=%s lon=%s err=%v", RequestID(c), latRaw, lonRaw, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
	default:
		c.JSON(http.StatusOK, w)
	}
}
