package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/mrsinham/bignumgen/internal/generator"
	"github.com/mrsinham/bignumgen/internal/testcase"
	"github.com/mrsinham/bignumgen/internal/util"
)

func suiteCommand(s *settings) *cli.Command {
	return &cli.Command{
		Name:  "suite",
		Usage: "Generate a directory of cases (NNN.in operands, NNN.out expected result)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: "suite directory"},
			&cli.StringFlag{Name: "range", Usage: "index range, e.g. '12' or '5-12' (overrides --from/--to)"},
			&cli.IntFlag{Name: "from", Usage: "first index"},
			&cli.IntFlag{Name: "to", Usage: "last index"},
			&cli.StringFlag{Name: "mode", Usage: "mul or sub"},
			&cli.IntFlag{Name: "workers", Usage: fmt.Sprintf("parallel workers (default: %d = CPU cores)", runtime.NumCPU())},
		},
		Action: func(c *cli.Context) error {
			sc := s.cfg.Suite
			if c.IsSet("dir") {
				sc.Dir = c.String("dir")
			}
			if c.IsSet("from") {
				sc.From = c.Int("from")
			}
			if c.IsSet("to") {
				sc.To = c.Int("to")
			}
			if c.IsSet("mode") {
				sc.Mode = c.String("mode")
			}
			if c.IsSet("workers") {
				sc.Workers = c.Int("workers")
			}

			r := util.IndexRange{From: sc.From, To: sc.To}
			if c.IsSet("range") {
				parsed, err := util.ParseIndexRange(c.String("range"))
				if err != nil {
					return err
				}
				r = parsed
			}
			mode, err := testcase.ParseMode(sc.Mode)
			if err != nil {
				return err
			}

			res, err := generator.GenerateSuite(c.Context, generator.SuiteOptions{
				Dir:     sc.Dir,
				Range:   r,
				Mode:    mode,
				Seed:    s.cfg.Seed,
				Workers: sc.Workers,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.ErrWriter, "✓ %d cases (%s, seed %d) written to %s/\n", len(res.Cases), mode, res.Seed, sc.Dir)
			return nil
		},
	}
}
