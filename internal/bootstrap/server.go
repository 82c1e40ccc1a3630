package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flighttracker/api"
	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/docs"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/Domenick1991/flighttracker/internal/service/forecast"
	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/Domenick1991/flighttracker/internal/web"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Flights   flights.FlightUseCase
	Weather   forecast.WeatherUseCase
	Itinerary itinerary.ItineraryUseCase
	// Cache is nil when caching is disabled.
	Cache api.Pinger
}

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, services Services) error {
	router, err := NewRouter(cfg, services)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires every handler onto a gin engine.
func NewRouter(cfg *config.Config, services Services) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestIDMiddleware(), api.LoggingMiddleware())
	router.SetHTMLTemplate(tmpl)

	api.NewPageHandler(services.Itinerary).Register(router)
	api.NewHealthHandler(services.Cache).Register(router)

	group := router.Group("/api")
	api.NewFlightHandler(services.Flights).Register(group.Group("/flights"))
	api.NewWeatherHandler(services.Weather).Register(group.Group("/weather"))
	api.NewItineraryHandler(services.Itinerary).Register(group.Group("/itinerary"))
	api.NewGeoHandler().Register(group)

	if cfg.HTTP.SwaggerEnabled {
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		)))
	}

	return router, nil
}
