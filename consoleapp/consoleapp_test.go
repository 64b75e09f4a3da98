package consoleapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/micutio/departureboard/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 15, 15, 4, 0, 0, time.UTC)

func runForTest(t *testing.T, options Options) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	logParams := internal.LogParams{ConsoleOut: &stdout, ErrorOut: &stderr, Verbose: options.Verbose}
	err := run("departureboard-test", options, logParams, testNow)

	return stdout.String(), stderr.String(), err
}

func TestRunSampleBoard(t *testing.T) {
	stdout, stderr, err := runForTest(t, Options{})
	require.NoError(t, err)

	sections := []string{
		"Departures from New York, USA (JFK)",
		"Departure time: 2026-10-15 15:04:00 +0000 UTC",
		"Departure time: 3:04 PM",
		"Your flight to Cairo, Egypt is en route. Please go to terminal 1.",
		"We're sorry your flight to London, England was canceled, here is a $500 voucher.",
		"Your flight to Seattle, USA is scheduled to depart at 3:04 PM from terminal TBD.",
		"$750.00",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(stdout, section)
		require.GreaterOrEqual(t, idx, 0, "missing %q", section)
		assert.Greater(t, idx, last, "%q is out of order", section)
		last = idx
	}

	assert.Equal(t, 6, strings.Count(stdout, "___________________________"))
	assert.NotContains(t, stdout, "<nil>")
	assert.NotContains(t, stdout, "Destination")
	assert.Empty(t, stderr)
}

func TestRunWithTable(t *testing.T) {
	stdout, _, err := runForTest(t, Options{ShowTable: true})
	require.NoError(t, err)

	fareIdx := strings.Index(stdout, "$750.00")
	tableIdx := strings.LastIndex(stdout, "Destination")
	require.GreaterOrEqual(t, fareIdx, 0)
	assert.Greater(t, tableIdx, fareIdx)
	assert.Contains(t, stdout[tableIdx:], "AA9167")
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := runForTest(t, Options{Verbose: true})
	require.NoError(t, err)

	assert.Contains(t, stderr, "config loaded")
	assert.Contains(t, stderr, "passengers alerted")
}

func TestRunConfigFile(t *testing.T) {
	config := `
current_airport: {country: England, city: London, code: LGW}
flights:
  - code: BA2490
    airline: British Airways
    status: delayed
    destination: {country: Spain, city: Malaga, code: AGP}
  - code: U28003
    airline: easyJet
    status: scheduled
    departure_time: 2026-10-15T18:45:00Z
    terminal: North
    destination: {country: France, city: Nice, code: NCE}
fare: {checked_bags: 1, distance: 1000, travelers: 2}
`
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	t.Run("skips delayed flight without time", func(t *testing.T) {
		stdout, stderr, err := runForTest(t, Options{ConfigPath: path})
		require.NoError(t, err)

		assert.Contains(t, stdout, "Departures from London, England (LGW)")
		assert.Contains(t, stdout, "Your flight to Nice, France is scheduled to depart at 6:45 PM from terminal North.")
		assert.NotContains(t, stdout, "Your flight to Malaga")
		assert.Contains(t, stdout, "$250.00")
		assert.Contains(t, stderr, "BA2490")
	})

	t.Run("legacy alerts stop at delayed flight", func(t *testing.T) {
		stdout, _, err := runForTest(t, Options{ConfigPath: path, LegacyAlerts: true})
		require.NoError(t, err)

		assert.NotContains(t, stdout, "Your flight to Nice")
		assert.Contains(t, stdout, "$250.00")
	})
}

func TestRunConfigErrors(t *testing.T) {
	dir := t.TempDir()
	badStatus := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badStatus, []byte(`
current_airport: {country: USA, city: New York, code: JFK}
flights:
  - {code: XY1, status: boarding}
`), 0o600))

	tests := []struct {
		name     string
		path     string
		expected error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), expected: os.ErrNotExist},
		{name: "unknown status", path: badStatus, expected: internal.ErrUnknownFlightStatus},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, _, err := runForTest(t, Options{ConfigPath: test.path})
			require.ErrorIs(t, err, test.expected)
			assert.Empty(t, stdout)
		})
	}
}
