package internal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gen2brain/beeep"
)

const (
	// appIconPath is the file path to the icon png for this application.
	appIconPath = "./assets/icon.png"
	// shortTimeLayout renders only the time of day, e.g. "3:04 PM".
	shortTimeLayout = "3:04 PM"
	// placeholderTBD stands in for any value that hasn't been decided yet.
	placeholderTBD = "TBD"
	// infoDeskHint is appended whenever the terminal is not known.
	infoDeskHint = "see the nearest information desk for more details."
)

func newDesktopNotifier(appName string) func(title, body string) error {
	beeep.AppName = appName //nolint:reassign // This is the only way to set app name in beeep.
	return func(title, body string) error {
		return beeep.Notify(title, body, appIconPath)
	}
}

func formatShortTime(departureTime time.Time) string {
	return departureTime.Format(shortTimeLayout)
}

// AlertPassengers prints one alert per flight and returns the alerts in the order they were
// emitted.
// Scheduled and delayed flights without a departure time get no alert. Usually only that
// flight is skipped, with AlertOptions.AbortOnMissingTime no further flights are alerted.
func (console *Console) AlertPassengers(board *DepartureBoard) []string {
	var alerts []string

	for _, flight := range board.Departures() {
		alert, ok := PassengerAlert(flight)
		if !ok {
			if console.alerts.AbortOnMissingTime {
				console.logger.Warn(
					"flight has no departure time, no further passengers are alerted",
					"flight", flight.Code,
					"status", flight.Status)
				return alerts
			}

			console.logger.Warn(
				"flight has no departure time, skipping alert",
				"flight", flight.Code,
				"status", flight.Status)
			continue
		}

		console.Stdout.Println(alert)
		alerts = append(alerts, alert)

		if console.alerts.Desktop {
			console.notifyDesktop(flight, alert)
		}
	}

	return alerts
}

func (console *Console) notifyDesktop(flight Flight, alert string) {
	title := fmt.Sprintf("Flight %s: %s", flight.Code, flight.Status)
	if err := console.notifier(title, alert); err != nil {
		console.logger.Error("unable to send desktop notification",
			"flight", flight.Code,
			slog.Any("error", err))
	}
}

// PassengerAlert returns the message for the passengers of a flight.
// ok is false if the flight is scheduled or delayed but has no departure time, in which case
// there is nothing meaningful to tell the passengers.
func PassengerAlert(flight Flight) (string, bool) {
	destination := flight.Destination

	switch flight.Status {
	case Canceled:
		return fmt.Sprintf(
			"We're sorry your flight to %s, %s was canceled, here is a $500 voucher.",
			destination.City,
			destination.Country), true
	case Scheduled:
		if flight.DepartureTime == nil {
			return "", false
		}

		return fmt.Sprintf(
			"Your flight to %s, %s is scheduled to depart at %s from terminal %s",
			destination.City,
			destination.Country,
			formatShortTime(*flight.DepartureTime),
			terminalSuffix(flight.Terminal)), true
	case Delayed:
		if flight.DepartureTime == nil {
			return "", false
		}

		return fmt.Sprintf(
			"Your flight to %s, %s is delayed. It is now scheduled to depart at %s from terminal %s",
			destination.City,
			destination.Country,
			formatShortTime(*flight.DepartureTime),
			terminalSuffix(flight.Terminal)), true
	case EnRoute:
		if flight.Terminal == nil {
			return fmt.Sprintf(
				"Your flight to %s, %s is en route. Terminal %s, please %s",
				destination.City,
				destination.Country,
				placeholderTBD,
				infoDeskHint), true
		}

		return fmt.Sprintf(
			"Your flight to %s, %s is en route. Please go to terminal %s.",
			destination.City,
			destination.Country,
			*flight.Terminal), true
	}

	return "", false
}

// terminalSuffix finishes a "... from terminal " sentence.
func terminalSuffix(terminal *string) string {
	if terminal == nil {
		return placeholderTBD + ". Please " + infoDeskHint
	}

	return *terminal + "."
}
