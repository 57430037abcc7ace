// Package calc evaluates zero-variable expressions for the calculator.
//
// The calculator pipeline is Rewrite in its calculator variant, which also
// substitutes a lone e, then Compile with no parameters, then a single call.
// Unlike the plotter, a non-finite result here is a failure: there is no
// sensible way to display 1/0 as a number.
package calc

import (
	"math"
	"strconv"

	"mathpad/expr"
)

// Marker is the literal the calculator displays in place of a result when
// evaluation fails for any reason.
const Marker = "Error"

// NotFiniteError is an error indicating that an expression evaluated to a
// NaN or infinite result.
type NotFiniteError struct {
	// Value is the non-finite result.
	Value float64
}

func (err *NotFiniteError) Error() string {
	return "result " + Format(err.Value) + " is not finite"
}

// Evaluate computes the value of a zero-variable expression. The error is a
// compile error from the engine, or *NotFiniteError when the expression
// evaluates but its result is NaN or infinite.
func Evaluate(text string) (float64, error) {
	src := expr.Rewrite(text, expr.SubstituteE())
	f, err := expr.Compile(src, nil)
	if err != nil {
		return 0, err
	}
	r, err := f.Call()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &NotFiniteError{Value: r}
	}
	return r, nil
}

// Display evaluates text and formats the result for the calculator display.
// Any failure displays as Marker.
func Display(text string) string {
	r, err := Evaluate(text)
	if err != nil {
		return Marker
	}
	return Format(r)
}

// Format renders a result in shortest form that round-trips.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
