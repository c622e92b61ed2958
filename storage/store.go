package storage

import (
	"errors"
	"fmt"

	"github.com/MixinNetwork/ratio/common"
	"github.com/MixinNetwork/ratio/config"
)

var ErrInvalidName = errors.New("storage: invalid value name")

type NamedValue struct {
	Name  string          `json:"name" msgpack:"N"`
	Value common.Rational `json:"value" msgpack:"V"`
}

// Store keeps named rationals, the registers shared by RPC clients.
type Store interface {
	Close() error

	ReadValue(name string) (common.Rational, bool, error)
	WriteValue(name string, value common.Rational) error
	RemoveValue(name string) (bool, error)
	ListValues() ([]*NamedValue, error)

	DumpValues() ([]byte, error)
	LoadValues(data []byte) (int, error)
}

// ValidateName accepts 1 to config.ValueNameMaximumSize characters of
// letters, digits, '_', '-' and '.'.
func ValidateName(name string) error {
	if len(name) == 0 || len(name) > config.ValueNameMaximumSize {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.':
		default:
			return fmt.Errorf("%w %q", ErrInvalidName, name)
		}
	}
	return nil
}
