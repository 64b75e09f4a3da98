package internal

import (
	"log" //nolint:depguard // Don't feel like using slog for plain console output
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// separator is printed after every flight on the board.
const separator = "___________________________"

// Console writes the board, passenger alerts and fares to the console.
type Console struct {
	Stdout   *log.Logger
	logger   *slog.Logger
	header   lipgloss.Style
	alerts   AlertOptions
	notifier func(title, body string) error
}

// AlertOptions control how passengers are alerted.
type AlertOptions struct {
	// AbortOnMissingTime stops alerting altogether at the first scheduled or delayed flight
	// without a departure time, instead of skipping just that flight.
	AbortOnMissingTime bool
	// Desktop additionally sends every alert as a desktop notification.
	Desktop bool
}

func NewConsole(appName string, logParams LogParams, alerts AlertOptions) *Console {
	renderer := lipgloss.NewRenderer(logParams.ConsoleOut)

	return &Console{
		Stdout:   logParams.NewConsoleLogger(),
		logger:   logParams.NewErrorLogger(),
		header:   renderer.NewStyle().Bold(true).Underline(true),
		alerts:   alerts,
		notifier: newDesktopNotifier(appName),
	}
}

// PrintHeader prints which airport the board belongs to.
func (console *Console) PrintHeader(board *DepartureBoard) {
	console.Stdout.Println(console.header.Render("Departures from " + board.CurrentAirport().String()))
}

// PrintDepartures prints every flight of the board. Present departure times are printed in
// their full default representation.
func (console *Console) PrintDepartures(board *DepartureBoard) {
	for _, departure := range board.Departures() {
		console.printFlight(departure, func(departureTime time.Time) string {
			return departureTime.String()
		})
	}
}

// PrintDeparturesShort prints every flight of the board, showing only the time of day of
// a present departure time.
func (console *Console) PrintDeparturesShort(board *DepartureBoard) {
	for _, departure := range board.Departures() {
		console.printFlight(departure, formatShortTime)
	}
}

func (console *Console) printFlight(departure Flight, formatTime func(time.Time) string) {
	console.Stdout.Printf("Flight %s to %s\n", departure.Code, departure.Destination)
	console.Stdout.Printf("Status: %s\n", departure.Status)
	console.Stdout.Printf("Airline: %s\n", departure.Airline)
	if departure.DepartureTime != nil {
		console.Stdout.Printf("Departure time: %s\n", formatTime(*departure.DepartureTime))
	}
	if departure.Terminal != nil {
		console.Stdout.Printf("Terminal: %s\n", *departure.Terminal)
	}
	console.Stdout.Println(separator)
}

// PrintAirfare prints the total fare of a trip.
func (console *Console) PrintAirfare(trip Trip) {
	console.Stdout.Printf(
		"Airfare for %d traveler(s), %d checked bag(s), %d miles: %s\n",
		trip.Travelers,
		trip.CheckedBags,
		trip.Distance,
		FormatAirfare(trip.Airfare()))
}
