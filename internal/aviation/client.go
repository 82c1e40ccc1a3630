// Package aviation is a client for the aviationstack flight-status API.
package aviation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/domain"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var ErrMalformedPayload = errors.New("aviation: malformed upstream payload")

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("aviation: unexpected status: %d", e.Code)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(cfg config.AviationConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchFlights looks up flights by IATA flight number. A blank number or a
// response without a data array yields an empty slice.
func (c *Client) FetchFlights(ctx context.Context, flightNumber string) ([]domain.Flight, error) {
	flightNumber = strings.TrimSpace(flightNumber)
	if flightNumber == "" {
		return []domain.Flight{}, nil
	}

	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("flight_iata", flightNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", redactURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("aviation api error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return decodeFlights(body)
}

type flightsResponse struct {
	Data json.RawMessage `json:"data"`
}

type apiFlight struct {
	FlightStatus string `json:"flight_status"`
	Departure    apiLeg `json:"departure"`
	Arrival      apiLeg `json:"arrival"`
	Airline      struct {
		Name string `json:"name"`
	} `json:"airline"`
	Flight struct {
		IATA string `json:"iata"`
	} `json:"flight"`
	Aircraft *struct {
		IATA string `json:"iata"`
	} `json:"aircraft"`
}

// apiLeg mirrors a departure or arrival block. The provider sends null for
// unknown values, which decode to the zero value.
type apiLeg struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Baggage   string `json:"baggage"`
	Delay     *int   `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
}

func decodeFlights(body []byte) ([]domain.Flight, error) {
	var envelope flightsResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || data[0] != '[' {
		return []domain.Flight{}, nil
	}

	if err := validateFlights(data); err != nil {
		return nil, err
	}

	var raw []apiFlight
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	flights := make([]domain.Flight, 0, len(raw))
	for _, f := range raw {
		flights = append(flights, toDomainFlight(f))
	}
	return flights, nil
}

func toDomainFlight(f apiFlight) domain.Flight {
	flight := domain.Flight{
		FlightNumber: f.Flight.IATA,
		Airline:      f.Airline.Name,
		Origin:       toLocation(f.Departure),
		Destination:  toLocation(f.Arrival),
		Status:       DeriveStatus(f.FlightStatus, f.Departure.Delay, f.Arrival.Delay),
	}
	// Baggage claim only makes sense on arrival.
	flight.Destination.Baggage = f.Arrival.Baggage

	if f.Aircraft != nil && f.Aircraft.IATA != "" {
		flight.Aircraft = &domain.Aircraft{Type: f.Aircraft.IATA}
	}
	return flight
}

func toLocation(l apiLeg) domain.Location {
	loc := domain.Location{
		Code:          l.IATA,
		City:          l.Airport,
		Time:          l.Scheduled,
		Timezone:      l.Timezone,
		Terminal:      l.Terminal,
		Gate:          l.Gate,
		EstimatedTime: l.Estimated,
	}
	if l.Delay != nil {
		loc.DelayMinutes = *l.Delay
	}
	return loc
}

// delayThreshold is the number of minutes past which a leg counts as delayed.
const delayThreshold = 15

// DeriveStatus maps provider state onto the three display statuses. A
// cancellation wins over any delay.
func DeriveStatus(flightStatus string, departureDelay, arrivalDelay *int) domain.FlightStatus {
	switch {
	case flightStatus == "cancelled":
		return domain.FlightStatusCancelled
	case exceeds(departureDelay), exceeds(arrivalDelay),
		flightStatus == "incident", flightStatus == "diverted":
		return domain.FlightStatusDelayed
	default:
		return domain.FlightStatusOnTime
	}
}

func exceeds(delay *int) bool {
	return delay != nil && *delay > delayThreshold
}

// redactURL masks the access key in a transport error so it never reaches
// a log line.
func redactURL(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, parseErr := url.Parse(uerr.URL)
	if parseErr != nil {
		uerr.URL = "[redacted]"
		return err
	}
	q := u.Query()
	if q.Has("access_key") {
		q.Set("access_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	uerr.URL = u.String()
	return err
}
