// Package plot samples compiled expressions over a closed domain, producing
// series suitable for line-chart rendering. Points where evaluation fails or
// yields a non-finite value become gap samples rather than errors, so a
// singularity in the domain breaks the drawn line instead of the plot.
package plot

import "math"

// Sample is one point of a sampled series. If Gap is set, Y is meaningless
// and renderers should break the line at X.
type Sample struct {
	X, Y float64
	Gap  bool
}

// Func is the callable a Sampler evaluates, a function of one variable.
// *expr.Fn compiled with a single parameter implements it.
type Func interface {
	Call(args ...float64) (float64, error)
}

// Sampler describes a sampling grid: the closed domain [Min, Max] divided
// into Steps equal steps. The zero value is not useful; start from Default.
type Sampler struct {
	Min, Max float64
	Steps    int
}

// Default returns the standard sampling grid of 401 points across [-10, 10].
func Default() Sampler {
	return Sampler{Min: -10, Max: 10, Steps: 400}
}

// Sample evaluates f on the sampler's grid. The result always has exactly
// Steps+1 points in ascending x order with both endpoints included exactly,
// no matter how many evaluations fail. Steps below 1 is treated as 1.
func (s Sampler) Sample(f Func) []Sample {
	steps := s.Steps
	if steps < 1 {
		steps = 1
	}
	out := make([]Sample, steps+1)
	for i := range out {
		x := s.Min + (s.Max-s.Min)*(float64(i)/float64(steps))
		if i == steps {
			x = s.Max
		}
		out[i].X = x
		y, err := f.Call(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			out[i].Gap = true
			continue
		}
		out[i].Y = y
	}
	return out
}
