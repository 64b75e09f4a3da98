package internal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTableWidth is used for the board table if the config doesn't set a width.
const DefaultTableWidth = 100

var (
	ErrNoCurrentAirport = errors.New("no current airport configured")
	ErrInvalidFlight    = errors.New("invalid flight")
)

// Config mirrors the YAML seed file for a departure board.
type Config struct {
	CurrentAirport AirportConfig  `yaml:"current_airport"`
	Flights        []FlightConfig `yaml:"flights"`
	Fare           FareConfig     `yaml:"fare"`
	TableWidth     int            `yaml:"table_width"`
}

type AirportConfig struct {
	Country string `yaml:"country"`
	City    string `yaml:"city"`
	Code    string `yaml:"code"`
}

// FlightConfig describes one flight. DepartureTime and Terminal may be left out or set to
// null if they are not known.
type FlightConfig struct {
	Code          string        `yaml:"code"`
	Airline       string        `yaml:"airline"`
	Status        string        `yaml:"status"`
	DepartureTime *time.Time    `yaml:"departure_time"`
	Terminal      *string       `yaml:"terminal"`
	Destination   AirportConfig `yaml:"destination"`
}

type FareConfig struct {
	CheckedBags int `yaml:"checked_bags"`
	Distance    int `yaml:"distance"`
	Travelers   int `yaml:"travelers"`
}

// LoadConfig reads a YAML file and unmarshals it into a struct of type T.
func LoadConfig[T any](filepath string) (*T, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("loadConfig: failed to read file: %w", err)
	}

	var config T
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("loadConfig: failed to unmarshal yaml: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the sample board at JFK with three departures: one en route, one
// canceled without a time and one scheduled without a terminal.
func DefaultConfig(now time.Time) *Config {
	departureTime := now.Round(0).Truncate(time.Second)
	terminal1 := "1"
	terminal5 := "5"

	return &Config{
		CurrentAirport: AirportConfig{Country: "USA", City: "New York", Code: "JFK"},
		Flights: []FlightConfig{
			{
				Code:          "MS986",
				Airline:       "EgyptAir",
				Status:        EnRoute.String(),
				DepartureTime: &departureTime,
				Terminal:      &terminal1,
				Destination:   AirportConfig{Country: "Egypt", City: "Cairo", Code: "CAI"},
			},
			{
				Code:          "B62143",
				Airline:       "JetBlue Airways",
				Status:        Canceled.String(),
				DepartureTime: nil,
				Terminal:      &terminal5,
				Destination:   AirportConfig{Country: "England", City: "London", Code: "LGW"},
			},
			{
				Code:          "AA9167",
				Airline:       "American Airlines",
				Status:        Scheduled.String(),
				DepartureTime: &departureTime,
				Terminal:      nil,
				Destination:   AirportConfig{Country: "USA", City: "Seattle", Code: "SEA"},
			},
		},
		Fare:       FareConfig{CheckedBags: 2, Distance: 2000, Travelers: 3},
		TableWidth: DefaultTableWidth,
	}
}

func (ac AirportConfig) airport() Airport {
	return Airport{Country: ac.Country, City: ac.City, Code: ac.Code}
}

// NewBoard builds the departure board described by the config, appending flights in the
// order they appear in the file.
func (config *Config) NewBoard() (*DepartureBoard, error) {
	if config.CurrentAirport.Code == "" {
		return nil, fmt.Errorf("newBoard: %w", ErrNoCurrentAirport)
	}

	board := NewDepartureBoard(config.CurrentAirport.airport())
	for i, flightConfig := range config.Flights {
		status, statusErr := ParseFlightStatus(flightConfig.Status)
		if statusErr != nil {
			return nil, fmt.Errorf("newBoard: %w #%d (%s): %w", ErrInvalidFlight, i, flightConfig.Code, statusErr)
		}

		board.Append(Flight{
			Destination:   flightConfig.Destination.airport(),
			DepartureTime: flightConfig.DepartureTime,
			Airline:       flightConfig.Airline,
			Terminal:      flightConfig.Terminal,
			Status:        status,
			Code:          flightConfig.Code,
		})
	}

	return board, nil
}

func (config *Config) Trip() Trip {
	return Trip{
		CheckedBags: config.Fare.CheckedBags,
		Distance:    config.Fare.Distance,
		Travelers:   config.Fare.Travelers,
	}
}
