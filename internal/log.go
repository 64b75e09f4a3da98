package internal

import (
	"io"
	"log" //nolint:depguard // Don't feel like using slog for plain console output
	"log/slog"
)

// LogParams contains the parameters for logging console output and errors.
// # Console output
// - departures, alerts and the fare go to ConsoleOut, without any prefix
// # Diagnostics
// - slog records (skipped alerts, failed notifications, config problems) go to ErrorOut
// .
type LogParams struct {
	ConsoleOut io.Writer
	ErrorOut   io.Writer
	Verbose    bool
}

// NewConsoleLogger returns the logger used for everything the passengers get to read.
func (params LogParams) NewConsoleLogger() *log.Logger {
	return log.New(params.ConsoleOut, "", 0)
}

// NewErrorLogger returns a text slog logger at info level, or debug level if verbose is set.
func (params LogParams) NewErrorLogger() *slog.Logger {
	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(params.ErrorOut, &slog.HandlerOptions{Level: level}))
}
