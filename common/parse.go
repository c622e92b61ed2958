package common

import (
	"math/big"
	"strings"
)

// Parse reads a literal of the form "n" or "n/d", where n and d are decimal
// integers of any length with an optional leading '-'. The result is reduced,
// so "117/-1098" parses to -13/122. A zero denominator fails as well, with a
// ParseError wrapping ErrInvalidArgument.
func Parse(text string) (Rational, error) {
	ns, ds := text, ""
	i := strings.IndexByte(text, '/')
	if i >= 0 {
		ns, ds = text[:i], text[i+1:]
	}
	num, ok := parseInteger(ns)
	if !ok {
		return Zero, &ParseError{Text: text, Err: ErrSyntax}
	}
	den := bigOne
	if i >= 0 {
		den, ok = parseInteger(ds)
		if !ok {
			return Zero, &ParseError{Text: text, Err: ErrSyntax}
		}
	}
	v, err := New(num, den)
	if err != nil {
		return Zero, &ParseError{Text: text, Err: err}
	}
	return v, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Rational {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func parseInteger(s string) (*big.Int, bool) {
	digits := strings.TrimPrefix(s, "-")
	if len(digits) == 0 {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}
