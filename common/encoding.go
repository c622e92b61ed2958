package common

import (
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rational) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return r.UnmarshalText([]byte(unquoted))
}

func (r Rational) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.String())
}

func (r *Rational) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
