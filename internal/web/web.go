// Package web holds the server-rendered search page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/Domenick1991/flighttracker/internal/calendar"
	"github.com/Domenick1991/flighttracker/internal/domain"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates with their helper funcs.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"clock":       clock,
		"statusClass": statusClass,
		"iconURL":     iconURL,
		"showEstimate": func(l domain.Location) bool {
			return l.EstimatedTime != "" && l.EstimatedTime != l.Time
		},
	}
}

// clock renders a leg time as a short local clock reading, or "" when the
// timestamp cannot be parsed.
func clock(value, zone string) string {
	t, err := calendar.LocalTime(value, zone)
	if err != nil {
		return ""
	}
	return t.Format("3:04 PM")
}

func statusClass(status domain.FlightStatus) string {
	switch status {
	case domain.FlightStatusOnTime:
		return "status-on-time"
	case domain.FlightStatusDelayed:
		return "status-delayed"
	default:
		return "status-cancelled"
	}
}

func iconURL(icon string) string {
	if strings.TrimSpace(icon) == "" {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + icon + "@2x.png"
}
