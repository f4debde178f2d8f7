// Package output writes generated cases: the expected-result file, the
// operand stream and the suite directory layout.
package output

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExpectedPath is where generate writes the expected result
const DefaultExpectedPath = "output.txt"

// WriteExpected truncates path and writes the decimal value with no trailing newline
func WriteExpected(path string, value *big.Int) error {
	if err := os.WriteFile(path, []byte(value.String()), 0644); err != nil {
		return fmt.Errorf("writing expected result to %s: %w", path, err)
	}
	return nil
}

// ReadExpected reads a decimal integer written by WriteExpected or by the
// program under test. Surrounding whitespace is ignored.
func ReadExpected(path string) (*big.Int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDecimal(string(data))
}

// ParseDecimal parses a base-10 integer, tolerating surrounding whitespace
func ParseDecimal(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", abbreviate(s))
	}
	return v, nil
}

// WriteOperands writes x and y on two lines
func WriteOperands(w io.Writer, x, y *big.Int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(x.String())
	bw.WriteByte('\n')
	bw.WriteString(y.String())
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing operands: %w", err)
	}
	return nil
}

// ReadOperands reads the two lines produced by WriteOperands
func ReadOperands(r io.Reader) (x, y *big.Int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var vals []*big.Int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := ParseDecimal(line)
		if err != nil {
			return nil, nil, fmt.Errorf("operand %d: %w", len(vals)+1, err)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading operands: %w", err)
	}
	if len(vals) != 2 {
		return nil, nil, fmt.Errorf("expected 2 operands, got %d", len(vals))
	}
	return vals[0], vals[1], nil
}

// SuitePaths returns the operand and expected-result file paths for index
// inside a suite directory.
func SuitePaths(dir string, index int) (in, out string) {
	base := filepath.Join(dir, fmt.Sprintf("%03d", index))
	return base + ".in", base + ".out"
}

// WriteCase writes the suite files for one case
func WriteCase(dir string, index int, x, y, value *big.Int) error {
	in, out := SuitePaths(dir, index)
	f, err := os.Create(in)
	if err != nil {
		return fmt.Errorf("creating %s: %w", in, err)
	}
	if err := WriteOperands(f, x, y); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", in, err)
	}
	return WriteExpected(out, value)
}

func abbreviate(s string) string {
	if len(s) <= 40 {
		return s
	}
	return s[:20] + "..." + s[len(s)-17:]
}
