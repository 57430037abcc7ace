package expr

import (
	"slices"
	"strings"
)

// Fn is a compiled expression. Every free name in the expression is bound to
// a parameter position, so calling a Fn can never fail to resolve a name.
// A Fn is immutable and safe for concurrent use.
type Fn struct {
	// n is the root of the parsed expression.
	n *node
	// params is the parameter list in declaration order.
	params []string
	// idx maps parameter names to their argument positions.
	idx map[string]int
}

// Compile parses src and binds its free names to the given parameters. If
// the expression uses a name that is not among params, the result is a
// *NameError recording the position of the name's first occurrence. The
// given options are applied in order, as in Parse.
func Compile(src string, params []string, opts ...ParseOption) (*Fn, error) {
	ex, err := Parse(strings.NewReader(src), opts...)
	if err != nil {
		return nil, err
	}
	return ex.Bind(params...)
}

// Bind binds a parsed expression's free names to the given parameters. If
// the expression uses a name that is not among params, the result is a
// *NameError. Parameters the expression never mentions are allowed; their
// arguments are ignored at call time.
func (e *Expr) Bind(params ...string) (*Fn, error) {
	idx := make(map[string]int, len(params))
	for i, p := range params {
		idx[p] = i
	}
	for _, name := range e.names {
		if _, ok := idx[name]; !ok {
			return nil, &NameError{Name: name, Col: e.namepos[name]}
		}
	}
	return &Fn{n: e.n, params: slices.Clone(params), idx: idx}, nil
}

// Call evaluates the function with the given arguments. The only possible
// error is an *ArityError when len(args) differs from the parameter count;
// arithmetic itself is total and signals trouble through NaN and infinities.
func (f *Fn) Call(args ...float64) (float64, error) {
	if len(args) != len(f.params) {
		return 0, &ArityError{Want: len(f.params), Got: len(args)}
	}
	return f.n.eval(&binding{idx: f.idx, args: args}), nil
}

// Params returns the parameter list the function was compiled with.
func (f *Fn) Params() []string {
	return slices.Clone(f.params)
}

// String renders the compiled expression in normalized form, with
// alternating round and square brackets grouping each term.
func (f *Fn) String() string {
	return f.n.String()
}
