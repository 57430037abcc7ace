package calc_test

import (
	"errors"
	"math"
	"testing"

	"mathpad/calc"
	"mathpad/expr"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"pow", "2**3", 8},
		{"caret", "2^3", 8},
		{"sqrt", "sqrt(16)", 4},
		{"qualified", "math.sqrt(16)", 4},
		{"e", "e", math.E},
		{"exp-e", "exp(1)", math.E},
		{"pi", "π", math.Pi},
		{"chain", "round(100 sin(0) + 2.5)", 3},
		{"negative", "-2^2", -4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("%q errored: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q = %g, want %g", c.src, r, c.r)
			}
		})
	}
}

func TestEvaluateNotFinite(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"div-zero", "1/0"},
		{"neg-div-zero", "-1/0"},
		{"nan", "0/0"},
		{"sqrt-neg", "sqrt(-1)"},
		{"inf-literal", "inf"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.Evaluate(c.src)
			var nf *calc.NotFiniteError
			if !errors.As(err, &nf) {
				t.Fatalf("%q gave %#v, not NotFiniteError", c.src, err)
			}
		})
	}
}

func TestEvaluateCompileError(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"malformed", "x +* 1"},
		{"free-name", "x + 1"},
		{"bracket", "(2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.Evaluate(c.src)
			var ce expr.CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("%q gave %#v, not a CompileError", c.src, err)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"int", "2+2", "4"},
		{"real", "1/4", "0.25"},
		{"error", "1/0", calc.Marker},
		{"malformed", "x +* 1", calc.Marker},
		{"shortest", "0.1 + 0.2", "0.30000000000000004"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := calc.Display(c.src); got != c.want {
				t.Errorf("Display(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}
