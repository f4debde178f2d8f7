package testcase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFlag is returned when a mode flag cannot be parsed
var ErrInvalidFlag = errors.New("invalid mode flag")

// Mode selects which operation the expected result is computed with
type Mode int

const (
	Multiply Mode = iota
	Subtract
)

// String returns the short name of the mode
func (m Mode) String() string {
	switch m {
	case Subtract:
		return "sub"
	default:
		return "mul"
	}
}

// ParseFlag interprets the positional sort flag: 0 is Multiply, anything else Subtract.
func ParseFlag(s string) (Mode, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Multiply, fmt.Errorf("%w %q: must be an integer", ErrInvalidFlag, s)
	}
	if v != 0 {
		return Subtract, nil
	}
	return Multiply, nil
}

// ParseMode parses a mode name as used in config files and flags.
// Numeric values are accepted with the same meaning as ParseFlag.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mul", "multiply", "":
		return Multiply, nil
	case "sub", "subtract":
		return Subtract, nil
	}
	m, err := ParseFlag(s)
	if err != nil {
		return Multiply, fmt.Errorf("%w %q (valid: mul, sub, 0, 1)", ErrInvalidFlag, s)
	}
	return m, nil
}
