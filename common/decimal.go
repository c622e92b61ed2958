package common

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// NewFromDecimal converts a decimal literal such as "-1.25" or "3e-2" into
// the exact rational it denotes.
func NewFromDecimal(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, &ParseError{Text: s, Err: ErrSyntax}
	}
	return FromDecimal(d), nil
}

func FromDecimal(d decimal.Decimal) Rational {
	num := d.Coefficient()
	exp := d.Exponent()
	if exp >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		return mustCanonical(num.Mul(num, scale), bigOne)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(-int64(exp)), nil)
	return mustCanonical(num, scale)
}

// Decimal rounds r to the given number of decimal places, half away from zero.
// The result is for display only.
func (r Rational) Decimal(places int32) decimal.Decimal {
	n := decimal.NewFromBigInt(r.Num(), 0)
	d := decimal.NewFromBigInt(r.Den(), 0)
	return n.DivRound(d, places)
}

func (r Rational) FloatString(places int32) string {
	return r.Decimal(places).StringFixed(places)
}
