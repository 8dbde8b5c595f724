// Package schedule resolves platforms for trains, assembles routes from
// stored rows and keeps the in-memory route registry.
package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the textual timestamp format used for input and output.
const TimeLayout = "2006-01-02 15:04:05"

// PlatformSnapshot is the platform a route departs from or arrives at,
// denormalized at load time.
type PlatformSnapshot struct {
	Number  int       `json:"platform"`
	Station string    `json:"station"`
	City    string    `json:"city"`
	Time    time.Time `json:"time"`
}

func (p PlatformSnapshot) String() string {
	return fmt.Sprintf("platform %d from station %s in %s at %s", p.Number, p.Station, p.City, p.Time.Format(TimeLayout))
}

// Route is a loaded trip. It is a snapshot: changing storage does not
// affect it until the registry reloads.
type Route struct {
	id          int
	trainNumber int
	trainType   string
	direction   bool
	departure   PlatformSnapshot
	arrival     PlatformSnapshot
}

// NewRoute builds a route from already resolved parts.
func NewRoute(id, trainNumber int, trainType string, direction bool, departure, arrival PlatformSnapshot) *Route {
	return &Route{
		id:          id,
		trainNumber: trainNumber,
		trainType:   trainType,
		direction:   direction,
		departure:   departure,
		arrival:     arrival,
	}
}

func (r *Route) ID() int                     { return r.id }
func (r *Route) TrainNumber() int            { return r.trainNumber }
func (r *Route) TrainType() string           { return r.trainType }
func (r *Route) Direction() bool             { return r.direction }
func (r *Route) Departure() PlatformSnapshot { return r.departure }
func (r *Route) Arrival() PlatformSnapshot   { return r.arrival }

// String renders the route as the multi-line block printed by the console.
func (r *Route) String() string {
	return strings.Join([]string{
		fmt.Sprintf("Route: %d", r.id),
		fmt.Sprintf("Train: %s %d", r.trainType, r.trainNumber),
		"Departure: " + r.departure.String(),
		"Arrival: " + r.arrival.String(),
	}, "\n") + "\n"
}

func (r *Route) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int              `json:"id"`
		TrainNumber int              `json:"train_number"`
		TrainType   string           `json:"train_type"`
		Direction   string           `json:"direction"`
		Departure   PlatformSnapshot `json:"departure"`
		Arrival     PlatformSnapshot `json:"arrival"`
	}{r.id, r.trainNumber, r.trainType, DirectionName(r.direction), r.departure, r.arrival})
}

// DirectionName spells out a direction flag.
func DirectionName(direction bool) string {
	if direction {
		return "forwards"
	}
	return "reverse"
}
