package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/aviation"
	"github.com/Domenick1991/flighttracker/internal/bootstrap"
	"github.com/Domenick1991/flighttracker/internal/cache"
	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/Domenick1991/flighttracker/internal/service/forecast"
	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/Domenick1991/flighttracker/internal/weather"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		flightCache  flights.FlightCache
		weatherCache forecast.WeatherCache
		services     bootstrap.Services
	)
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Aviation.CacheTTL(), cfg.Weather.CacheTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unreachable at %s, continuing without a warm cache: %v", cfg.Redis.Addr, err)
		}
		flightCache, weatherCache, services.Cache = redisCache, redisCache, redisCache
	} else {
		log.Printf("redis not configured, upstream responses will not be cached")
	}

	flightService := flights.NewFlightService(aviation.NewClient(cfg.Aviation), flightCache)
	weatherService := forecast.NewWeatherService(weather.NewClient(cfg.Weather), weatherCache)
	itineraryService := itinerary.NewItineraryService(
		flightService,
		weatherService,
		itinerary.WithPathPoints(cfg.Itinerary.PathPoints),
		itinerary.WithConcurrency(cfg.Itinerary.Concurrency),
	)

	services.Flights = flightService
	services.Weather = weatherService
	services.Itinerary = itineraryService

	log.Printf("flight tracker listening on %s airports=%d", cfg.HTTP.Address, geo.AirportCount())
	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
