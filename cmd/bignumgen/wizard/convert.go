package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrsinham/bignumgen/internal/generator"
	"github.com/mrsinham/bignumgen/internal/output"
	"github.com/mrsinham/bignumgen/internal/testcase"
)

// ToGeneratorOptions converts State to generator.Options. The operand writer
// is left for the caller to set.
func ToGeneratorOptions(s *State) (generator.Options, error) {
	index, err := parseIndex(s.Index)
	if err != nil {
		return generator.Options{}, err
	}
	mode, err := testcase.ParseMode(s.Mode)
	if err != nil {
		return generator.Options{}, err
	}
	seed, err := parseSeed(s.Seed)
	if err != nil {
		return generator.Options{}, err
	}
	path := strings.TrimSpace(s.OutputPath)
	if path == "" {
		path = output.DefaultExpectedPath
	}
	return generator.Options{Index: index, Mode: mode, OutputPath: path, Seed: seed}, nil
}

// FromGeneratorOptions builds a State prefilled from opts
func FromGeneratorOptions(opts generator.Options) *State {
	s := &State{
		Index:      "1",
		Mode:       opts.Mode.String(),
		OutputPath: opts.OutputPath,
	}
	if opts.Index > 0 {
		s.Index = strconv.Itoa(opts.Index)
	}
	if opts.Seed != 0 {
		s.Seed = strconv.FormatInt(opts.Seed, 10)
	}
	if s.OutputPath == "" {
		s.OutputPath = output.DefaultExpectedPath
	}
	return s
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("test index must be a number")
	}
	if index < 1 {
		return 0, fmt.Errorf("test index must be >= 1")
	}
	return index, nil
}

func parseSeed(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed must be an integer")
	}
	return seed, nil
}

// describeCase returns a one-line description of what index selects
func describeCase(index int) string {
	if index <= testcase.NumFixed {
		c, err := testcase.Select(index, nil)
		if err != nil {
			return ""
		}
		return string(c.Kind)
	}
	k := index - testcase.NumFixed
	return fmt.Sprintf("random, operands of up to %d bits", k*testcase.RandomBlockBits)
}
