package internal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// checkedBagFee is the price of a single checked bag in [USD].
	checkedBagFee = 25.0
	// perMileFee is the price of a single mile flown in [USD].
	perMileFee = 0.10
)

// Trip describes what a group of travelers books.
type Trip struct {
	CheckedBags int
	Distance    int // Distance in [miles]
	Travelers   int
}

func (trip Trip) Airfare() float64 {
	return CalculateAirfare(trip.CheckedBags, trip.Distance, trip.Travelers)
}

// CalculateAirfare returns the total airfare in [USD] for all travelers.
// Inputs are not checked, negative counts simply flow through the formula.
func CalculateAirfare(checkedBags, distance, travelers int) float64 {
	ticketCost := float64(checkedBags)*checkedBagFee + float64(distance)*perMileFee
	return float64(travelers) * ticketCost
}

// FormatAirfare renders an amount as US dollars, e.g. "$1,250.50".
func FormatAirfare(amount float64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%.2f", amount)
}
