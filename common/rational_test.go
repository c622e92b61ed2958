package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalCanonical(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		num, den int64
		want     string
	}{
		{3, 4, "3/4"},
		{6, 8, "3/4"},
		{-6, 8, "-3/4"},
		{6, -8, "-3/4"},
		{-6, -8, "3/4"},
		{0, 5, "0"},
		{0, -5, "0"},
		{5, 1, "5"},
		{10, -5, "-2"},
		{2000000000, 4000000000, "1/2"},
	}
	for _, c := range cases {
		r, err := NewInt64(c.num, c.den)
		assert.Nil(err)
		assert.Equal(c.want, r.String())
		assert.Equal(1, r.Den().Sign())
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.Num()), r.Den())
		assert.Equal(int64(1), g.Int64())
	}

	a := NewRatio(2, 4)
	b := NewRatio(-1, -2)
	c := NewRatio(1, 2)
	assert.True(a.Equal(b))
	assert.True(b.Equal(c))
	assert.Equal(a.Key(), c.Key())

	_, err := NewInt64(1, 0)
	assert.ErrorIs(err, ErrInvalidArgument)
	_, err = New(big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(err, ErrInvalidArgument)
	assert.Panics(func() { NewRatio(5, 0) })
}

func TestRationalImmutable(t *testing.T) {
	assert := assert.New(t)

	num, den := big.NewInt(6), big.NewInt(-8)
	r, err := New(num, den)
	assert.Nil(err)
	assert.Equal("6", num.String())
	assert.Equal("-8", den.String())

	n := r.Num()
	n.SetInt64(100)
	d := r.Den()
	d.SetInt64(100)
	assert.Equal("-3/4", r.String())

	s := r.Add(One)
	assert.Equal("1/4", s.String())
	assert.Equal("-3/4", r.String())
}

func TestRationalZeroValue(t *testing.T) {
	assert := assert.New(t)

	var z Rational
	assert.Equal("0", z.String())
	assert.True(z.IsZero())
	assert.True(z.IsInteger())
	assert.Equal(int64(1), z.Den().Int64())
	assert.True(z.Equal(NewInteger(0)))
	assert.True(z.Equal(NewRatio(0, 7)))
	assert.Equal(0, z.Cmp(NewRatio(0, 3)))
	assert.Equal("1/2", z.Add(NewRatio(1, 2)).String())
	assert.Equal("1", One.String())
}

func TestRationalLarge(t *testing.T) {
	assert := assert.New(t)

	a := MustParse("912016490186296920119201192141970416029")
	b := MustParse("1824032980372593840238402384283940832058")
	q, err := a.Div(b)
	assert.Nil(err)
	assert.True(q.Equal(NewRatio(1, 2)))

	n, _ := new(big.Int).SetString("912016490186296920119201192141970416029", 10)
	d, _ := new(big.Int).SetString("1824032980372593840238402384283940832058", 10)
	r, err := New(n, d)
	assert.Nil(err)
	assert.Equal("1/2", r.String())

	// both round to the same float64
	x := MustParse("100000000000000000000000000000001/100000000000000000000000000000000")
	y := MustParse("100000000000000000000000000000002/100000000000000000000000000000000")
	assert.Equal(-1, x.Cmp(y))
	assert.Equal(1, y.Cmp(x))
	assert.False(x.Equal(y))
}
