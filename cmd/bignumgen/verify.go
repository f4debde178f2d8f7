package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mrsinham/bignumgen/internal/output"
	"github.com/mrsinham/bignumgen/internal/testcase"
	"github.com/mrsinham/bignumgen/internal/verify"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Compare a result against the expected file, or check an expected file against its operands",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "expected", Usage: "expected result file", Value: output.DefaultExpectedPath},
			&cli.StringFlag{Name: "actual", Usage: "result produced by the program under test"},
			&cli.StringFlag{Name: "operands", Usage: "operand file (two lines) to recompute the expected result from"},
			&cli.StringFlag{Name: "mode", Usage: "mul or sub, used with --operands", Value: "mul"},
		},
		Action: func(c *cli.Context) error {
			expected := c.String("expected")
			switch {
			case c.String("actual") != "":
				if err := verify.CompareFiles(expected, c.String("actual")); err != nil {
					return err
				}
			case c.String("operands") != "":
				mode, err := testcase.ParseMode(c.String("mode"))
				if err != nil {
					return err
				}
				if err := verify.CheckFiles(c.String("operands"), expected, mode); err != nil {
					return err
				}
			default:
				return fmt.Errorf("verify needs --actual or --operands")
			}
			fmt.Fprintln(c.App.ErrWriter, "✓ results match")
			return nil
		},
	}
}
