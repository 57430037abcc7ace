package expr

import "math"

// Func is a function from reals to reals. The parser looks up identifiers in
// the function table before treating them as free names, so a Func's name
// decides how expressions that mention it parse.
type Func interface {
	// Call evaluates the function. args has a length for which CanCall
	// returned true. Arithmetic follows float64 rules, so out-of-domain
	// arguments yield NaN or infinities rather than errors.
	Call(args []float64) float64

	// CanCall returns whether the function can be called with n arguments.
	// This controls how the expression parser handles instances of this
	// function:
	//
	// 	1.	If a bracketed list of n > 0 expressions follows a function, the
	//		parser treats it as an argument list if CanCall(n). (If n is 1 and
	//		!CanCall(1) and CanCall(0), then the list is a multiplication;
	//		otherwise, it is rejected.)
	//
	// 	2.	If a bare term follows a function and CanCall(1), then the parser
	//		treats the term as an argument to the function. E.g., "math.exp x"
	//		is parsed as "math.exp(x)". (If !CanCall(1), then it is a
	//		multiplication.)
	CanCall(n int) bool
}

// Qualifier is the prefix under which the default functions and constants
// are named. Rewrite inserts it in front of bare well-known names so that
// user function names like "exp" and parameter names like "e" never collide
// with the table.
const Qualifier = "math."

// builtins is the set of bare names that Rewrite qualifies. Its keys joined
// to Qualifier are exactly the keys of globalfuncs.
var builtins = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"log": true, "sqrt": true, "abs": true, "exp": true,
	"pow": true, "min": true, "max": true,
	"round": true, "floor": true, "ceil": true,
	"pi": true, "e": true,
}

var globalfuncs = map[string]Func{
	"math.sin":  Monadic(math.Sin),
	"math.cos":  Monadic(math.Cos),
	"math.tan":  Monadic(math.Tan),
	"math.log":  Monadic(math.Log),
	"math.sqrt": Monadic(math.Sqrt),
	"math.abs":  Monadic(math.Abs),
	"math.exp":  Monadic(math.Exp),

	"math.pow": Dyadic(math.Pow),
	"math.min": Variadic(math.Min),
	"math.max": Variadic(math.Max),

	"math.round": Monadic(roundHalfUp),
	"math.floor": Monadic(math.Floor),
	"math.ceil":  Monadic(math.Ceil),

	// constants
	"math.pi": Niladic(func() float64 { return math.Pi }),
	"math.e":  Niladic(func() float64 { return math.E }),
}

// roundHalfUp rounds to the nearest integer with halves rounding toward
// positive infinity, so round(-2.5) is -2 rather than -3.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(args []float64) float64 {
	return m.f(args[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(_, _ float64) float64
}

func (d dyadic) Call(args []float64) float64 {
	return d.f(args[0], args[1])
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(f func(_, _ float64) float64) Func {
	return dyadic{f}
}

type variadic struct {
	f func(_, _ float64) float64
}

func (v variadic) Call(args []float64) float64 {
	r := args[0]
	for _, x := range args[1:] {
		r = v.f(r, x)
	}
	return r
}

func (v variadic) CanCall(n int) bool {
	return n >= 1
}

// Variadic wraps an associative function of two variables into a Func
// callable with any positive number of arguments, folding left to right.
func Variadic(f func(_, _ float64) float64) Func {
	return variadic{f}
}

type niladic struct {
	f func() float64
}

func (n niladic) Call(args []float64) float64 {
	return n.f()
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func.
func Niladic(f func() float64) Func {
	return niladic{f}
}
