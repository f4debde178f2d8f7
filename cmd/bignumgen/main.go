package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	s := &settings{}
	return &cli.App{
		Name:      "bignumgen",
		Usage:     "Generate big-integer test cases and their expected results",
		Version:   version,
		ArgsUsage: "<test_number> <sort_flag>",
		Description: "Prints two operands on stdout and writes the expected result to the output file.\n" +
			"Indices 1-4 are fixed edge cases; 5 and above draw random operands of growing width.\n" +
			"A sort_flag of 0 multiplies, any other integer subtracts the smaller operand from the larger.",
		Flags:  s.flags(),
		Before: s.load,
		Action: func(c *cli.Context) error {
			return runGenerate(c, s)
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate one test case",
				ArgsUsage: "<test_number> <sort_flag>",
				Action: func(c *cli.Context) error {
					return runGenerate(c, s)
				},
			},
			suiteCommand(s),
			verifyCommand(),
			{
				Name:  "wizard",
				Usage: "Configure and generate a test case interactively",
				Action: func(c *cli.Context) error {
					return runWizard(c, s)
				},
			},
		},
		HideHelpCommand: true,
	}
}
