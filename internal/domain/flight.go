package domain

type FlightStatus string

const (
	FlightStatusOnTime    FlightStatus = "On Time"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

// Location is one end of a flight leg.
type Location struct {
	Code          string   `json:"code"`
	City          string   `json:"city"`
	Time          string   `json:"time"`
	Timezone      string   `json:"timezone"`
	Terminal      string   `json:"terminal,omitempty"`
	Gate          string   `json:"gate,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	DelayMinutes  int      `json:"delayMinutes,omitempty"`
	Baggage       string   `json:"baggage,omitempty"`
	Weather       *Weather `json:"weather,omitempty"`
}

type Aircraft struct {
	Type string `json:"type"`
}

type Flight struct {
	FlightNumber string       `json:"flightNumber"`
	Airline      string       `json:"airline"`
	Origin       Location     `json:"origin"`
	Destination  Location     `json:"destination"`
	Status       FlightStatus `json:"status"`
	Aircraft     *Aircraft    `json:"aircraft,omitempty"`
}
