// Package calendar builds "add to calendar" links for flights.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Domenick1991/flighttracker/internal/domain"
)

const googleCalendarURL = "https://calendar.google.com/calendar/render"

const (
	compactLayout  = "20060102T150405Z"
	readableLayout = "1/2/2006, 3:04:05 PM"
)

// GoogleCalendarLink returns a Google Calendar event template URL spanning the
// scheduled departure and arrival of f. Optional leg details are listed in the
// event description only when present.
func GoogleCalendarLink(f domain.Flight) (string, error) {
	start, err := parseTime(f.Origin.Time)
	if err != nil {
		return "", fmt.Errorf("departure time: %w", err)
	}
	end, err := parseTime(f.Destination.Time)
	if err != nil {
		return "", fmt.Errorf("arrival time: %w", err)
	}

	params := [][2]string{
		{"action", "TEMPLATE"},
		{"text", fmt.Sprintf("✈️ %s - %s", f.FlightNumber, f.Airline)},
		{"dates", start.UTC().Format(compactLayout) + "/" + end.UTC().Format(compactLayout)},
		{"details", Description(f)},
		{"location", fmt.Sprintf("%s (%s) → %s (%s)", f.Origin.Code, f.Origin.City, f.Destination.Code, f.Destination.City)},
		{"trp", "false"},
	}

	encoded := make([]string, 0, len(params))
	for _, p := range params {
		encoded = append(encoded, url.QueryEscape(p[0])+"="+url.QueryEscape(p[1]))
	}
	return googleCalendarURL + "?" + strings.Join(encoded, "&"), nil
}

// Description renders the multi-line event body for f.
func Description(f domain.Flight) string {
	lines := []string{
		"Flight: " + f.FlightNumber,
		"Airline: " + f.Airline,
		"Status: " + string(f.Status),
		"",
		"📍 DEPARTURE",
	}
	lines = append(lines, legLines(f.Origin)...)

	lines = append(lines, "", "🎯 ARRIVAL")
	lines = append(lines, legLines(f.Destination)...)

	if f.Aircraft != nil {
		lines = append(lines, "", "Aircraft: "+f.Aircraft.Type)
	}
	return strings.Join(lines, "\n")
}

func legLines(l domain.Location) []string {
	lines := []string{
		fmt.Sprintf("Airport: %s (%s)", l.City, l.Code),
		"Time: " + readable(l.Time, l.Timezone),
		"Timezone: " + l.Timezone,
	}
	if l.Terminal != "" {
		lines = append(lines, "Terminal: "+l.Terminal)
	}
	if l.Gate != "" {
		lines = append(lines, "Gate: "+l.Gate)
	}
	if l.Baggage != "" {
		lines = append(lines, "Baggage: "+l.Baggage)
	}
	if l.EstimatedTime != "" && l.EstimatedTime != l.Time {
		lines = append(lines, "Estimated: "+readable(l.EstimatedTime, l.Timezone))
	}
	if l.DelayMinutes > 0 {
		lines = append(lines, fmt.Sprintf("⚠️ Delay: %d minutes", l.DelayMinutes))
	}
	return lines
}

func readable(value, zone string) string {
	t, err := LocalTime(value, zone)
	if err != nil {
		return "Invalid Date"
	}
	return t.Format(readableLayout)
}

// LocalTime parses an upstream timestamp and moves it into the leg's own
// timezone, falling back to UTC when the zone is unknown.
func LocalTime(value, zone string) (time.Time, error) {
	t, err := parseTime(value)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc), nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
