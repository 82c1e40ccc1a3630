package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Aviation  AviationConfig  `yaml:"aviation"`
	Weather   WeatherConfig   `yaml:"weather"`
	Redis     RedisConfig     `yaml:"redis"`
	Itinerary ItineraryConfig `yaml:"itinerary"`
}

type HTTPConfig struct {
	Address        string `yaml:"address"`
	SwaggerEnabled bool   `yaml:"swagger_enabled"`
}

// AviationConfig configures the aviationstack flight-status provider.
type AviationConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

func (a AviationConfig) Timeout() time.Duration  { return time.Duration(a.TimeoutSeconds) * time.Second }
func (a AviationConfig) CacheTTL() time.Duration { return time.Duration(a.CacheTTLSeconds) * time.Second }

// WeatherConfig configures the OpenWeatherMap current-conditions provider.
type WeatherConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

func (w WeatherConfig) Timeout() time.Duration  { return time.Duration(w.TimeoutSeconds) * time.Second }
func (w WeatherConfig) CacheTTL() time.Duration { return time.Duration(w.CacheTTLSeconds) * time.Second }

// RedisConfig is optional; an empty Addr disables the upstream response cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type ItineraryConfig struct {
	PathPoints  int `yaml:"path_points"`
	Concurrency int `yaml:"concurrency"`
}

// Default returns the configuration used for any value the file leaves unset.
// Credentials have no default.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			SwaggerEnabled: true,
		},
		Aviation: AviationConfig{
			BaseURL:         "https://api.aviationstack.com/v1",
			TimeoutSeconds:  10,
			CacheTTLSeconds: 60,
		},
		Weather: WeatherConfig{
			BaseURL:         "https://api.openweathermap.org/data/2.5",
			TimeoutSeconds:  10,
			CacheTTLSeconds: 1800,
		},
		Itinerary: ItineraryConfig{
			PathPoints:  100,
			Concurrency: 4,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"HTTP_ADDRESS":     &c.HTTP.Address,
		"AVIATION_API_KEY": &c.Aviation.APIKey,
		"WEATHER_API_KEY":  &c.Weather.APIKey,
		"REDIS_ADDR":       &c.Redis.Addr,
		"REDIS_PASSWORD":   &c.Redis.Password,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Aviation.APIKey == "" {
		errs = append(errs, errors.New("aviation api key is required (AVIATION_API_KEY)"))
	}
	if c.Weather.APIKey == "" {
		errs = append(errs, errors.New("weather api key is required (WEATHER_API_KEY)"))
	}
	for _, d := range []struct {
		name  string
		value int
	}{
		{"aviation timeout_seconds", c.Aviation.TimeoutSeconds},
		{"aviation cache_ttl_seconds", c.Aviation.CacheTTLSeconds},
		{"weather timeout_seconds", c.Weather.TimeoutSeconds},
		{"weather cache_ttl_seconds", c.Weather.CacheTTLSeconds},
	} {
		if d.value < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", d.name, d.value))
		}
	}
	if c.HTTP.Address == "" {
		errs = append(errs, errors.New("http address is required"))
	}
	if c.Itinerary.PathPoints < 1 {
		errs = append(errs, fmt.Errorf("itinerary path_points must be at least 1, got %d", c.Itinerary.PathPoints))
	}
	if c.Itinerary.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("itinerary concurrency must be at least 1, got %d", c.Itinerary.Concurrency))
	}
	return errors.Join(errs...)
}
