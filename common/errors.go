package common

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("rational: denominator is zero")
	ErrDivisionByZero  = errors.New("rational: division by zero")
	ErrSyntax          = errors.New("rational: invalid literal")
)

// ParseError reports a literal that could not be turned into a Rational.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rational: parsing %q: %s", e.Text, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
