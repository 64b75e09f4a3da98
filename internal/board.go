// Package internal provides the DepartureBoard type and all associated program logic.
package internal

import (
	"github.com/mohae/deepcopy"
)

// DepartureBoard lists the departing flights of one airport in the order they were added.
// Flight codes are not required to be unique.
type DepartureBoard struct {
	currentAirport Airport
	departures     []Flight
}

func NewDepartureBoard(currentAirport Airport, flights ...Flight) *DepartureBoard {
	board := DepartureBoard{
		currentAirport: currentAirport,
		departures:     make([]Flight, 0, len(flights)),
	}
	board.Append(flights...)

	return &board
}

func (board *DepartureBoard) CurrentAirport() Airport {
	return board.currentAirport
}

// Append adds flights to the end of the board, without reordering or deduplication.
func (board *DepartureBoard) Append(flights ...Flight) {
	board.departures = append(board.departures, flights...)
}

func (board *DepartureBoard) Len() int {
	return len(board.departures)
}

// Departures returns a deep copy of all flights in board order.
// The optional fields of a flight are pointers, so a shallow copy would leak write access
// to the board.
func (board *DepartureBoard) Departures() []Flight {
	if len(board.departures) == 0 {
		return []Flight{}
	}

	//nolint:forcetypeassert // deepcopy always returns the type it was given.
	return deepcopy.Copy(board.departures).([]Flight)
}
