// Package boardtable renders a departure board as a static table, like the ones hanging in
// the terminal halls:
// +--------------------------------------------------------------------+
// | FLIGHT  | DESTINATION           | AIRLINE   | TIME  | TRM | STATUS |
// | MS986   | Cairo, Egypt (CAI)    | EgyptAir  | 3:04  | 1   | ...    |
// +--------------------------------------------------------------------+
// .
package boardtable

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/departureboard/internal"
)

// Error types

var errColumnMismatch = errors.New("number of columns does not match number of format columns")

const (
	// cellPadding is the horizontal padding the table styles put around each cell.
	cellPadding = 2
	// placeholderTBD is shown for time and terminal while they are not known.
	placeholderTBD = "TBD"
	// shortTimeLayout renders only the time of day.
	shortTimeLayout = "3:04 PM"
)

// Automated Table Formatting

type tableColumnSizingOption int

const (
	// fixed column width, regardless of table width.
	fixed tableColumnSizingOption = iota
	// relative column with, given as fraction of the total table width.
	relative
	// fill columns receive any remaining table space, evenly distributed.
	fill
)

type columnFormat struct {
	option tableColumnSizingOption
	value  float32
}

type tableFormat struct {
	columnSizes        []columnFormat
	fixedWidth         int     // fixedWidth is the total space taken up by all fixed-width columns.
	fillWidthCount     int     // fillWidthCount indicates how many columns have fill width.
	totalRelativeWidth float32 // how much width is taken by relative columns.
}

func newTableFormat(items ...columnFormat) tableFormat {
	var totalRelativeWidth float32
	fixedWidth := 0
	fillWidthCount := 0

	for _, item := range items {
		switch item.option {
		case relative:
			totalRelativeWidth += item.value
		case fixed:
			fixedWidth += int(item.value)
		case fill:
			fillWidthCount++
		}
	}

	return tableFormat{
		columnSizes:        items,
		fixedWidth:         fixedWidth,
		fillWidthCount:     fillWidthCount,
		totalRelativeWidth: totalRelativeWidth,
	}
}

// Integrated Formatted Table Type

type autoFormatTable struct {
	table  table.Model
	format tableFormat
}

// resize distributes newWidth over the columns. Cell padding is taken off first, then fixed
// columns get their width, relative columns their share and fill columns split the rest.
func (aft *autoFormatTable) resize(newWidth int) error {
	columns := aft.table.Columns()
	columnCount := len(columns)
	if columnCount != len(aft.format.columnSizes) {
		return fmt.Errorf(
			"table.resize: %w -> %d in table, %d in tableFormat",
			errColumnMismatch,
			columnCount,
			len(aft.format.columnSizes))
	}

	contentWidth := max(newWidth-cellPadding*columnCount, 0)
	totalRelativeWidth := int(float32(contentWidth) * aft.format.totalRelativeWidth)
	totalFillWidth := max(contentWidth-totalRelativeWidth-aft.format.fixedWidth, 0)
	fillPerColumn := 0
	if aft.format.fillWidthCount > 0 {
		fillPerColumn = totalFillWidth / aft.format.fillWidthCount
	}

	resized := make([]table.Column, columnCount)
	for idx, column := range columns {
		format := aft.format.columnSizes[idx]
		switch format.option {
		case fixed:
			column.Width = int(format.value)
		case relative:
			column.Width = int(format.value * float32(contentWidth))
		case fill:
			column.Width = fillPerColumn
		}
		resized[idx] = column
	}

	aft.table.SetColumns(resized)
	aft.table.SetWidth(newWidth)

	return nil
}

func newDeparturesTable(tableStyle table.Styles, rows []table.Row) autoFormatTable {
	codeLen := 8
	timeLen := 22
	terminalLen := 8
	statusLen := 10
	format := newTableFormat(
		columnFormat{fixed, float32(codeLen)},
		columnFormat{fill, 0.0},
		columnFormat{fill, 0.0},
		columnFormat{fixed, float32(timeLen)},
		columnFormat{fixed, float32(terminalLen)},
		columnFormat{fixed, float32(statusLen)},
	)

	departuresTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "Flight", Width: codeLen},
				{Title: "Destination", Width: 0},
				{Title: "Airline", Width: 0},
				{Title: "Departure", Width: timeLen},
				{Title: "Terminal", Width: terminalLen},
				{Title: "Status", Width: statusLen},
			},
		),
		table.WithRows(rows),
		table.WithFocused(false),
		// one line per flight below the header, the header itself needs up to two lines
		table.WithHeight(len(rows)+2),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  departuresTbl,
		format: format,
	}
}

func flightToRow(flight internal.Flight) table.Row {
	departureTime := placeholderTBD
	if flight.DepartureTime != nil {
		departureTime = flight.DepartureTime.Format(shortTimeLayout)
	}

	terminal := placeholderTBD
	if flight.Terminal != nil {
		terminal = *flight.Terminal
	}

	return table.Row{
		flight.Code,
		flight.Destination.String(),
		flight.Airline,
		departureTime,
		terminal,
		flight.Status.String(),
	}
}

// Render lays out all departures of the board in a table of the given width.
// Colors are only used if out is a terminal.
func Render(out io.Writer, board *internal.DepartureBoard, width int) (string, error) {
	renderer := lipgloss.NewRenderer(out)

	tableStyle := table.DefaultStyles()
	tableStyle.Header = renderer.NewStyle().
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true)
	tableStyle.Cell = renderer.NewStyle().Padding(0, 1)
	// nothing is selected on a static board
	tableStyle.Selected = renderer.NewStyle()

	departures := board.Departures()
	rows := make([]table.Row, 0, len(departures))
	for _, departure := range departures {
		rows = append(rows, flightToRow(departure))
	}

	departuresTbl := newDeparturesTable(tableStyle, rows)
	if err := departuresTbl.resize(width); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	title := renderer.NewStyle().Bold(true).Render("Departures from " + board.CurrentAirport().String())

	return lipgloss.JoinVertical(lipgloss.Left, title, departuresTbl.table.View()), nil
}
