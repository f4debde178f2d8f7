// Package verify checks generated cases and compares results produced by
// the program under test against expected values.
package verify

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/mrsinham/bignumgen/internal/output"
	"github.com/mrsinham/bignumgen/internal/testcase"
	"github.com/pmezard/go-difflib/difflib"
)

// ErrMismatch is wrapped by MismatchError
var ErrMismatch = errors.New("result mismatch")

// DigitsPerLine is the width of each line in a mismatch diff
const DigitsPerLine = 64

// MismatchError describes a result that differs from the expected value
type MismatchError struct {
	ExpectedDigits int
	ActualDigits   int
	Diff           string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: expected %d digits, got %d digits\n%s",
		ErrMismatch, e.ExpectedDigits, e.ActualDigits, e.Diff)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// CheckOutcome recomputes the outcome from the decimal form of its operands
// and reports any property that does not hold.
func CheckOutcome(o testcase.Outcome) error {
	x, err := output.ParseDecimal(o.X.String())
	if err != nil {
		return fmt.Errorf("operand x: %w", err)
	}
	y, err := output.ParseDecimal(o.Y.String())
	if err != nil {
		return fmt.Errorf("operand y: %w", err)
	}
	return Check(x, y, o.Mode, o.Value)
}

// Check verifies that value is the result of applying mode to the printed
// operands x and y.
func Check(x, y *big.Int, mode testcase.Mode, value *big.Int) error {
	if x.Sign() < 0 || y.Sign() < 0 {
		return fmt.Errorf("operands must be non-negative, got %s and %s", x, y)
	}
	want := new(big.Int)
	switch mode {
	case testcase.Subtract:
		if x.Cmp(y) < 0 {
			return fmt.Errorf("subtract: printed x is smaller than printed y")
		}
		want.Sub(x, y)
	default:
		want.Mul(x, y)
	}
	return Compare(want, value)
}

// Compare returns a *MismatchError if actual differs from expected
func Compare(expected, actual *big.Int) error {
	if expected.Cmp(actual) == 0 {
		return nil
	}
	e, a := expected.String(), actual.String()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(chunk(e)),
		B:        difflib.SplitLines(chunk(a)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	})
	if err != nil {
		return fmt.Errorf("building diff: %w", err)
	}
	return &MismatchError{ExpectedDigits: len(e), ActualDigits: len(a), Diff: diff}
}

// CompareFiles compares two decimal result files
func CompareFiles(expectedPath, actualPath string) error {
	expected, err := output.ReadExpected(expectedPath)
	if err != nil {
		return err
	}
	actual, err := output.ReadExpected(actualPath)
	if err != nil {
		return err
	}
	return Compare(expected, actual)
}

// CheckFiles reads an operand file and an expected-result file and checks
// the result against mode.
func CheckFiles(operandsPath, expectedPath string, mode testcase.Mode) error {
	f, err := os.Open(operandsPath)
	if err != nil {
		return fmt.Errorf("opening operands: %w", err)
	}
	defer f.Close()

	x, y, err := output.ReadOperands(f)
	if err != nil {
		return fmt.Errorf("%s: %w", operandsPath, err)
	}
	value, err := output.ReadExpected(expectedPath)
	if err != nil {
		return err
	}
	return Check(x, y, mode, value)
}

func chunk(digits string) string {
	var b strings.Builder
	for i := 0; i < len(digits); i += DigitsPerLine {
		end := min(i+DigitsPerLine, len(digits))
		b.WriteString(digits[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
