package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mrsinham/bignumgen/cmd/bignumgen/wizard"
	"github.com/mrsinham/bignumgen/internal/generator"
	"github.com/mrsinham/bignumgen/internal/testcase"
)

func runGenerate(c *cli.Context, s *settings) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments <test_number> <sort_flag>, got %d\nUsage: %s [options] <test_number> <sort_flag>",
			c.NArg(), c.App.Name)
	}

	index, err := strconv.Atoi(strings.TrimSpace(c.Args().Get(0)))
	if err != nil {
		return fmt.Errorf("%w %q: must be an integer", testcase.ErrInvalidIndex, c.Args().Get(0))
	}
	mode, err := testcase.ParseFlag(c.Args().Get(1))
	if err != nil {
		return err
	}

	_, err = generator.Generate(generator.Options{
		Index:      index,
		Mode:       mode,
		OutputPath: s.cfg.Output,
		Seed:       s.cfg.Seed,
		Operands:   c.App.Writer,
	})
	return err
}

func runWizard(c *cli.Context, s *settings) error {
	opts, err := wizard.Run(generator.Options{
		Mode:       testcase.Multiply,
		OutputPath: s.cfg.Output,
		Seed:       s.cfg.Seed,
		Operands:   c.App.Writer,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	o, err := generator.Generate(opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.ErrWriter, wizard.Summary(opts, o))
	return nil
}
