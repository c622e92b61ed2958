package common

import (
	"math/big"
)

var (
	Zero Rational
	One  Rational

	bigOne = big.NewInt(1)
)

func init() {
	One = NewInteger(1)
}

// Rational is an exact fraction of two arbitrary precision integers.
//
// Every value is kept in canonical form: the denominator is positive, the
// numerator carries the sign and both are coprime. The zero value is 0.
// A Rational never changes after construction and is safe to copy and to
// share between goroutines.
type Rational struct {
	num big.Int
	den big.Int
}

// New reduces num/den to canonical form. It fails with ErrInvalidArgument
// when den is zero. Neither argument is modified.
func New(num, den *big.Int) (Rational, error) {
	var v Rational
	if den.Sign() == 0 {
		return v, ErrInvalidArgument
	}

	var g big.Int
	g.GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	v.num.Quo(num, &g)
	v.den.Quo(den, &g)
	if v.den.Sign() < 0 {
		v.num.Neg(&v.num)
		v.den.Neg(&v.den)
	}
	return v, nil
}

func NewInt64(num, den int64) (Rational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// NewRatio is like NewInt64 but panics on a zero denominator.
func NewRatio(num, den int64) Rational {
	v, err := NewInt64(num, den)
	if err != nil {
		panic(err)
	}
	return v
}

func NewInteger(n int64) (v Rational) {
	v.num.SetInt64(n)
	v.den.SetInt64(1)
	return
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(&r.num)
}

// Den returns a copy of the denominator, always positive.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.denominator())
}

func (r Rational) Sign() int {
	return r.num.Sign()
}

func (r Rational) IsZero() bool {
	return r.num.Sign() == 0
}

func (r Rational) IsInteger() bool {
	return r.denominator().Cmp(bigOne) == 0
}

// Key returns the canonical literal of r. Equal values have equal keys,
// so it can index maps.
func (r Rational) Key() string {
	return r.String()
}

// String formats r as "n" when the denominator is 1 and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

func (r *Rational) denominator() *big.Int {
	if r.den.Sign() == 0 {
		return bigOne
	}
	return &r.den
}
