// Package consoleapp launches the console application which builds the departure board once,
// writes departures, passenger alerts and the airfare to stdout and exits.
// The output is plain text and can be piped into other programs and processed further.
package consoleapp

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/micutio/departureboard/boardtable"
	"github.com/micutio/departureboard/internal"
)

// Options are collected from the command line.
type Options struct {
	ConfigPath   string // ConfigPath points to a YAML board seed, the sample board is used if empty.
	ShowTable    bool
	Notify       bool
	LegacyAlerts bool
	Verbose      bool
}

func Run(appName string, options Options) error {
	logParams := internal.LogParams{
		ConsoleOut: os.Stdout,
		ErrorOut:   os.Stderr,
		Verbose:    options.Verbose,
	}

	return run(appName, options, logParams, time.Now())
}

func run(appName string, options Options, logParams internal.LogParams, now time.Time) error {
	logger := logParams.NewErrorLogger()

	config, configErr := loadConfig(options.ConfigPath, now)
	if configErr != nil {
		return fmt.Errorf("run: %w", configErr)
	}
	logger.Debug("config loaded",
		"path", options.ConfigPath,
		"airport", config.CurrentAirport.Code,
		"flights", len(config.Flights))

	board, boardErr := config.NewBoard()
	if boardErr != nil {
		return fmt.Errorf("run: %w", boardErr)
	}

	console := internal.NewConsole(appName, logParams, internal.AlertOptions{
		AbortOnMissingTime: options.LegacyAlerts,
		Desktop:            options.Notify,
	})

	console.PrintHeader(board)
	console.PrintDepartures(board)
	console.PrintDeparturesShort(board)

	alerts := console.AlertPassengers(board)
	logger.Debug("passengers alerted", slog.Int("alerts", len(alerts)), slog.Int("flights", board.Len()))

	console.PrintAirfare(config.Trip())

	if options.ShowTable {
		width := config.TableWidth
		if width <= 0 {
			width = internal.DefaultTableWidth
		}

		view, renderErr := boardtable.Render(logParams.ConsoleOut, board, width)
		if renderErr != nil {
			return fmt.Errorf("run: %w", renderErr)
		}
		console.Stdout.Println(view)
	}

	return nil
}

func loadConfig(path string, now time.Time) (*internal.Config, error) {
	if path == "" {
		return internal.DefaultConfig(now), nil
	}

	return internal.LoadConfig[internal.Config](path)
}
