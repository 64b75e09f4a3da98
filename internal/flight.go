package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownFlightStatus is returned when a status name can't be mapped to a FlightStatus.
var ErrUnknownFlightStatus = errors.New("unknown flight status")

type FlightStatus int

const (
	EnRoute FlightStatus = iota
	Scheduled
	Delayed
	Canceled
)

// String returns the status as shown on the board.
func (s FlightStatus) String() string {
	switch s {
	case EnRoute:
		return "En Route"
	case Scheduled:
		return "Scheduled"
	case Delayed:
		return "Delayed"
	case Canceled:
		return "Canceled"
	}

	return fmt.Sprintf("FlightStatus(%d)", int(s))
}

// ParseFlightStatus maps a status name to a FlightStatus. Case, blanks, underscores and
// dashes are ignored, so "en route", "EN_ROUTE" and "enRoute" are all the same status.
func ParseFlightStatus(name string) (FlightStatus, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	switch normalized {
	case "enroute":
		return EnRoute, nil
	case "scheduled":
		return Scheduled, nil
	case "delayed":
		return Delayed, nil
	case "canceled", "cancelled":
		return Canceled, nil
	}

	return 0, fmt.Errorf("parseFlightStatus: %w: %q", ErrUnknownFlightStatus, name)
}

// Airport is used both for the airport a board belongs to and for flight destinations.
type Airport struct {
	Country string
	City    string
	Code    string
}

// String renders the airport as "City, Country (CODE)".
func (a Airport) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.City, a.Country, a.Code)
}

// Flight is a single departure.
// DepartureTime is nil if the flight is canceled or has no confirmed time yet, Terminal is nil
// while no terminal has been assigned.
type Flight struct {
	Destination   Airport
	DepartureTime *time.Time
	Airline       string
	Terminal      *string
	Status        FlightStatus
	Code          string
}
