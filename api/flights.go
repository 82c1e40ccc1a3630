package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.search)
}

// search godoc
// @Summary  Look up flights by IATA flight number
// @Param    flightNumber query string false "IATA flight number, e.g. AA100"
// @Success  200 {array} domain.Flight
// @Failure  500 {object} errorResponse
// @Router   /api/flights [get]
func (h *FlightHandler) search(c *gin.Context) {
	flightNumber := strings.TrimSpace(c.Query("flightNumber"))
	if flightNumber == "" {
		c.JSON(http.StatusOK, []domain.Flight{})
		return
	}

	found, err := h.service.Search(c.Request.Context(), flightNumber)
	if err != nil {
		log.Printf("flights search: request_id=%s flight=%s err=%v", RequestID(c), flightNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flight data"})
		return
	}
	c.JSON(http.StatusOK, found)
}
