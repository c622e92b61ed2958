package common

import "math/big"

// Cmp compares x and y exactly and returns -1, 0 or +1.
//
// Denominators are positive, so x < y exactly when a·d < c·b.
func (x Rational) Cmp(y Rational) int {
	var l, r big.Int
	l.Mul(&x.num, y.denominator())
	r.Mul(&y.num, x.denominator())
	return l.Cmp(&r)
}

func (x Rational) Equal(y Rational) bool {
	return x.num.Cmp(&y.num) == 0 && x.denominator().Cmp(y.denominator()) == 0
}

func (x Rational) Less(y Rational) bool {
	return x.Cmp(y) < 0
}

// Within reports whether lo <= x <= hi.
func (x Rational) Within(lo, hi Rational) bool {
	return lo.Cmp(x) <= 0 && x.Cmp(hi) <= 0
}

func Min(x, y Rational) Rational {
	if y.Cmp(x) < 0 {
		return y
	}
	return x
}

func Max(x, y Rational) Rational {
	if y.Cmp(x) > 0 {
		return y
	}
	return x
}

// Range is the closed interval [Start, End]. A range whose Start is greater
// than its End contains nothing.
type Range struct {
	Start Rational
	End   Rational
}

func NewRange(lo, hi Rational) Range {
	return Range{Start: lo, End: hi}
}

func (r Range) Contains(x Rational) bool {
	return x.Within(r.Start, r.End)
}

func (r Range) IsEmpty() bool {
	return r.Start.Cmp(r.End) > 0
}

func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}
