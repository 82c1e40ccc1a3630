package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores upstream responses for a short time so repeated lookups
// within the provider's freshness window do not hit the provider again.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	weatherTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, weatherTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		weatherTTL: weatherTTL,
	}
}

// GetFlights returns nil, nil on a miss.
func (c *RedisCache) GetFlights(ctx context.Context, flightNumber string) ([]domain.Flight, error) {
	var flights []domain.Flight
	found, err := c.get(ctx, flightsKey(flightNumber), &flights)
	if err != nil || !found {
		return nil, err
	}
	if flights == nil {
		flights = []domain.Flight{}
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flightNumber string, flights []domain.Flight) error {
	return c.set(ctx, flightsKey(flightNumber), flights, c.flightsTTL)
}

// GetWeather returns nil, nil on a miss.
func (c *RedisCache) GetWeather(ctx context.Context, at geo.Coordinate) (*domain.Weather, error) {
	var w domain.Weather
	found, err := c.get(ctx, weatherKey(at), &w)
	if err != nil || !found {
		return nil, err
	}
	return &w, nil
}

func (c *RedisCache) SetWeather(ctx context.Context, at geo.Coordinate, w *domain.Weather) error {
	return c.set(ctx, weatherKey(at), w, c.weatherTTL)
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func flightsKey(flightNumber string) string {
	return "cache:flights:" + strings.ToUpper(strings.TrimSpace(flightNumber))
}

func weatherKey(at geo.Coordinate) string {
	return fmt.Sprintf("cache:weather:%.2f:%.2f", at.Lat, at.Lng)
}
