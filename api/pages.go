package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/gin-gonic/gin"
)

const (
	searchFailedMessage = "Failed to find flight information. Please try again."
	noFlightsMessage    = "No flights found with that number."
)

type indexPage struct {
	FlightNumber string
	Error        string
	Empty        string
	Cards        []itinerary.Card
}

// PageHandler renders the search page. Results are rendered server-side for
// the flight number in the query, so each search is its own navigation.
type PageHandler struct {
	service itinerary.ItineraryUseCase
}

func NewPageHandler(service itinerary.ItineraryUseCase) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) Register(router gin.IRoutes) {
	router.GET("/", h.index)
}

func (h *PageHandler) index(c *gin.Context) {
	page := indexPage{FlightNumber: strings.ToUpper(strings.TrimSpace(c.Query("flightNumber")))}
	if page.FlightNumber == "" {
		c.HTML(http.StatusOK, "index.html", page)
		return
	}

	cards, err := h.service.Build(c.Request.Context(), page.FlightNumber)
	switch {
	case err != nil:
		log.Printf("index: request_id=%s flight=%s err=%v", RequestID(c), page.FlightNumber, err)
		page.Error = searchFailedMessage
	case len(cards) == 0:
		page.Empty = noFlightsMessage
	default:
		page.Cards = cards
	}
	c.HTML(http.StatusOK, "index.html", page)
}
