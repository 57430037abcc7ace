package expr

import (
	"strings"
	"unicode/utf8"
)

// Rewrite normalizes ordinary math notation into the engine's qualified
// form. Caret exponents become **, the π glyph becomes math.pi, and bare
// well-known names like sin and pi gain the math. qualifier. Names already
// qualified are left alone, so Rewrite is idempotent: applying it to its own
// output returns the output unchanged.
//
// Rewrite works on whole words. A word is a maximal run of ASCII letters,
// digits and underscores, so the e in exp is never touched and a name like
// expr never matches exp.
func Rewrite(src string, opts ...RewriteOption) string {
	var cfg rewritecfg
	for _, opt := range opts {
		cfg = opt.rewriteOption(cfg)
	}
	var b strings.Builder
	b.Grow(len(src) + 16)
	prev := rune(0)
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		switch {
		case isWord(r):
			j := i + sz
			for j < len(src) {
				r2, sz2 := utf8.DecodeRuneInString(src[j:])
				if !isWord(r2) {
					break
				}
				j += sz2
			}
			word := src[i:j]
			b.WriteString(qualify(word, prev, cfg))
			prev = r
			i = j
		case r == '^':
			b.WriteString("**")
			prev = r
			i += sz
		case r == 'π':
			b.WriteString(Qualifier + "pi")
			prev = r
			i += sz
		default:
			b.WriteRune(r)
			prev = r
			i += sz
		}
	}
	return b.String()
}

// qualify maps a single word to its rewritten form. prev is the rune
// immediately before the word in the input, or 0 at the start.
func qualify(word string, prev rune, cfg rewritecfg) string {
	if prev == '.' {
		// Part of a qualified name, or the fraction digits of a number.
		return word
	}
	if word == "e" && !cfg.subE {
		// Only the calculator treats a lone e as Euler's number; in a plot
		// expression it would shadow nothing but still surprise.
		return word
	}
	if !builtins[word] {
		return word
	}
	return Qualifier + word
}

// isWord reports whether r is a word rune for rewriting purposes.
func isWord(r rune) bool {
	return r == '_' ||
		'0' <= r && r <= '9' ||
		'a' <= r && r <= 'z' ||
		'A' <= r && r <= 'Z'
}

// RewriteOption is an option for rewriting.
type RewriteOption interface {
	rewriteOption(rewritecfg) rewritecfg
}

type rewritecfg struct {
	// subE indicates that a lone e rewrites to the qualified constant.
	subE bool
}

type subeopt struct{}

func (subeopt) rewriteOption(cfg rewritecfg) rewritecfg {
	cfg.subE = true
	return cfg
}

// SubstituteE makes Rewrite treat a lone e as Euler's number, rewriting it
// to the qualified constant. Word-run matching keeps the e in names like exp
// and ceil untouched.
func SubstituteE() RewriteOption {
	return subeopt{}
}
