package common

import "math/big"

func (x Rational) Neg() (v Rational) {
	v.num.Neg(&x.num)
	v.den.Set(x.denominator())
	return
}

func (x Rational) Abs() (v Rational) {
	v.num.Abs(&x.num)
	v.den.Set(x.denominator())
	return
}

// Add returns x + y, computed as (a·d + c·b) / (b·d) and reduced.
func (x Rational) Add(y Rational) Rational {
	var l, r, d big.Int
	l.Mul(&x.num, y.denominator())
	r.Mul(&y.num, x.denominator())
	d.Mul(x.denominator(), y.denominator())
	return mustCanonical(l.Add(&l, &r), &d)
}

func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

func (x Rational) Mul(y Rational) Rational {
	var n, d big.Int
	n.Mul(&x.num, &y.num)
	d.Mul(x.denominator(), y.denominator())
	return mustCanonical(&n, &d)
}

// Inv returns 1/x, or ErrDivisionByZero when x is zero.
func (x Rational) Inv() (Rational, error) {
	if x.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return New(x.denominator(), &x.num)
}

// Div returns x / y as x · (1/y).
func (x Rational) Div(y Rational) (Rational, error) {
	inv, err := y.Inv()
	if err != nil {
		return Zero, err
	}
	return x.Mul(inv), nil
}

// mustCanonical is used where the denominator is a product of positive
// denominators and so can never be zero.
func mustCanonical(num, den *big.Int) Rational {
	v, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return v
}
