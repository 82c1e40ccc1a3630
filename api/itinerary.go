package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/gin-gonic/gin"
)

type ItineraryHandler struct {
	service itinerary.ItineraryUseCase
}

func NewItineraryHandler(service itinerary.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

func (h *ItineraryHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.build)
}

// build godoc
// @Summary  Flights with weather, route and calendar link per flight
// @Param    flightNumber query string false "IATA flight number"
// @Success  200 {array} itinerary.Card
// @Failure  500 {object} errorResponse
// @Router   /api/itinerary [get]
func (h *ItineraryHandler) build(c *gin.Context) {
	flightNumber := strings.TrimSpace(c.Query("flightNumber"))
	if flightNumber == "" {
		c.JSON(http.StatusOK, []itinerary.Card{})
		return
	}

	cards, err := h.service.Build(c.Request.Context(), flightNumber)
	if err != nil {
		log.Printf("itinerary: request_id=%s flight=%s err=%v", RequestID(c), flightNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flight data"})
		return
	}
	c.JSON(http.StatusOK, cards)
}
