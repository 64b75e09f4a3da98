// Package main provides the departure board application
package main

import (
	"log/slog"
	"os"

	"github.com/micutio/departureboard/consoleapp"
	"github.com/spf13/pflag"
)

const (
	// thisAppName is the name of this application as shown on notifications.
	thisAppName = "departureboard"
)

func main() {
	var options consoleapp.Options

	setupCommandLineFlags(&options)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	if err := consoleapp.Run(thisAppName, options); err != nil {
		slog.Error("unable to show departures, exiting", slog.Any("error", err))
		os.Exit(1)
	}
}

func setupCommandLineFlags(options *consoleapp.Options) {
	// Board seed, without one the sample board at JFK is shown.
	pflag.StringVarP(
		&options.ConfigPath,
		"config",
		"c",
		"",
		"YAML file describing the current airport, its departures and the fare to calculate")

	pflag.BoolVarP(
		&options.ShowTable,
		"table",
		"t",
		false,
		"additionally render the departures as a table")
	pflag.Lookup("table").NoOptDefVal = "true"

	pflag.BoolVarP(
		&options.Notify,
		"notify",
		"n",
		false,
		"send passenger alerts as desktop notifications")
	pflag.Lookup("notify").NoOptDefVal = "true"

	pflag.BoolVar(
		&options.LegacyAlerts,
		"legacy-alerts",
		false,
		"stop alerting passengers at the first scheduled or delayed flight without departure time")

	pflag.BoolVarP(
		&options.Verbose,
		"verbose",
		"v",
		false,
		"log debug information to stderr")
}
