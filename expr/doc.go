// Package expr implements the expression engine behind mathpad.
//
// The engine turns a line of ordinary math notation into a callable function
// of zero or more float64 parameters. Input first passes through Rewrite,
// which normalizes notation (caret exponents, the π glyph, bare function
// names) into the engine's qualified form. Compile then parses the rewritten
// text into an immutable Fn whose Call method evaluates it against concrete
// arguments.
//
// The syntax is intended to be close to math you'd write in your notes:
// "2 x (x+1)" is a multiplication of three terms, "-2**2**n" is the same as
// "-(2**(2**n))", and "math.sin x" calls sin on the following term. The
// grammar is closed: literals, named parameters, the fixed function table,
// the binary operators + - * / ** (with ^, × and ÷ as alternate spellings),
// and unary plus and minus. Nothing is ever synthesized from text at run
// time; evaluation walks the parsed tree.
//
// Arithmetic follows IEEE float64 rules. Division by zero and out-of-domain
// function arguments produce infinities and NaNs rather than errors; callers
// that care (the calculator, the plot sampler) inspect results for
// finiteness.
package expr
