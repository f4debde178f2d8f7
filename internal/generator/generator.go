// Package generator runs test-case generation: a single case written to the
// expected-result file and the operand stream, or a suite of cases written
// to a directory by a pool of workers.
package generator

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/bignumgen/internal/log"
	"github.com/mrsinham/bignumgen/internal/output"
	"github.com/mrsinham/bignumgen/internal/testcase"
	"github.com/mrsinham/bignumgen/internal/util"
)

// Options configures a single generate run
type Options struct {
	Index int
	Mode  testcase.Mode
	// OutputPath receives the expected result; defaults to output.DefaultExpectedPath
	OutputPath string
	// Seed for random cases; 0 picks a clock-derived seed
	Seed int64
	// Operands receives the two operand lines
	Operands io.Writer
}

// Generate selects the case, writes the expected result to OutputPath and
// the operands to Operands. The expected file is written first so a consumer
// reading the operands can rely on it being in place.
func Generate(opts Options) (testcase.Outcome, error) {
	if opts.OutputPath == "" {
		opts.OutputPath = output.DefaultExpectedPath
	}
	if opts.Operands == nil {
		return testcase.Outcome{}, fmt.Errorf("no operand writer")
	}

	seed, auto := util.ResolveSeed(opts.Seed)
	rng := testcase.NewRand(uint64(seed))

	o, err := testcase.Generate(opts.Index, opts.Mode, rng)
	if err != nil {
		return testcase.Outcome{}, err
	}
	logger := log.Generator.With().Int("index", opts.Index).Str("mode", opts.Mode.String()).Logger()
	ev := logger.Debug().Str("kind", string(o.Case.Kind))
	if o.Case.Kind == testcase.Random {
		ev = ev.Int64("seed", seed).Bool("auto_seed", auto)
	}
	ev.Msg("case selected")

	if err := output.WriteExpected(opts.OutputPath, o.Value); err != nil {
		return o, err
	}
	log.Output.Info().
		Str("path", opts.OutputPath).
		Str("digits", humanize.Comma(int64(len(o.Value.String())))).
		Msg("expected result written")

	if err := output.WriteOperands(opts.Operands, o.X, o.Y); err != nil {
		return o, err
	}
	return o, nil
}
