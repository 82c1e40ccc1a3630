package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoHandler_airport(t *testing.T) {
	engine := newTestEngine()
	NewGeoHandler().Register(engine.Group("/api"))

	w := serve(engine, "/api/airports/lax")
	require.Equal(t, http.StatusOK, w.Code)

	lax, _ := geo.LookupAirport("LAX")
	var got airportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, airportResponse{Code: "LAX", Lat: lax.Lat, Lng: lax.Lng}, got)

	w = serve(engine, "/api/airports/ZZZ")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Airport not found"}`, w.Body.String())
}

func TestGeoHandler_route(t *testing.T) {
	engine := newTestEngine()
	NewGeoHandler().Register(engine.Group("/api"))

	w := serve(engine, "/api/route?from=JFK&to=LHR&points=8")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		From       geo.Coordinate   `json:"from"`
		To         geo.Coordinate   `json:"to"`
		Path       []geo.Coordinate `json:"path"`
		Bounds     geo.Bounds       `json:"bounds"`
		PathBounds geo.Bounds       `json:"pathBounds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	jfk, _ := geo.LookupAirport("JFK")
	lhr, _ := geo.LookupAirport("LHR")
	assert.Len(t, got.Path, 9)
	assert.Equal(t, jfk, got.From)
	assert.Equal(t, lhr, got.To)
	assert.Equal(t, geo.CalculateMapBounds(jfk, lhr), got.Bounds)
	for _, p := range got.Path {
		assert.True(t, got.PathBounds.Contains(p))
	}
}

func TestGeoHandler_route_DefaultPoints(t *testing.T) {
	engine := newTestEngine()
	NewGeoHandler().Register(engine.Group("/api"))

	w := serve(engine, "/api/route?from=SFO&to=ORD")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Path []geo.Coordinate `json:"path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Path, geo.DefaultPathPoints+1)
}

func TestGeoHandler_route_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"missing to", "/api/route?from=JFK", http.StatusBadRequest},
		{"zero points", "/api/route?from=JFK&to=LHR&points=0", http.StatusBadRequest},
		{"too many points", "/api/route?from=JFK&to=LHR&points=1001", http.StatusBadRequest},
		{"non numeric points", "/api/route?from=JFK&to=LHR&points=ten", http.StatusBadRequest},
		{"unknown airport", "/api/route?from=JFK&to=ZZZ", http.StatusNotFound},
	}

	engine := newTestEngine()
	NewGeoHandler().Register(engine.Group("/api"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(engine, tt.target)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
