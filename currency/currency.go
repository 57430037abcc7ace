// Package currency converts amounts between currencies over a static rate
// table. Rates are relative to a base unit and fixed for the process
// lifetime; there is no fetching and no rounding.
package currency

import (
	"math"
	"slices"
	"strconv"
)

// Table maps 3-letter currency codes to their exchange rate relative to the
// base unit. A Table is read-only once handed to the converter.
type Table map[string]float64

// Base is the code of the base unit the default rates are expressed in.
const Base = "EUR"

// Default returns the built-in rate table, relative to Base.
func Default() Table {
	return Table{
		"EUR": 1,
		"USD": 1.08,
		"GBP": 0.86,
		"JPY": 161.2,
		"CHF": 0.95,
		"CAD": 1.47,
		"AUD": 1.64,
		"SEK": 11.3,
		"NOK": 11.5,
		"PLN": 4.31,
	}
}

// ConversionError is an error indicating an amount that cannot be converted,
// either because it is non-finite or because a code is not in the table.
type ConversionError struct {
	// Amount is the amount that was to be converted.
	Amount float64
	// Code is the unknown currency code, or empty if the amount itself is
	// the problem.
	Code string
}

func (err *ConversionError) Error() string {
	if err.Code != "" {
		return "unknown currency code " + strconv.Quote(err.Code)
	}
	return "cannot convert non-finite amount " + strconv.FormatFloat(err.Amount, 'g', -1, 64)
}

// Convert converts amount from one currency to another, two hops through
// the base unit. Converting a code to itself returns the amount unchanged:
// the rates cancel exactly before they touch the amount.
func (t Table) Convert(amount float64, from, to string) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, &ConversionError{Amount: amount}
	}
	rf, ok := t[from]
	if !ok {
		return 0, &ConversionError{Amount: amount, Code: from}
	}
	rt, ok := t[to]
	if !ok {
		return 0, &ConversionError{Amount: amount, Code: to}
	}
	return amount * (rt / rf), nil
}

// Codes returns the table's currency codes in sorted order.
func (t Table) Codes() []string {
	v := make([]string, 0, len(t))
	for k := range t {
		v = append(v, k)
	}
	slices.Sort(v)
	return v
}
