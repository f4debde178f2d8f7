package wizard

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mrsinham/bignumgen/internal/generator"
	"github.com/mrsinham/bignumgen/internal/testcase"
)

// ErrCancelled is returned when the user aborts the form
var ErrCancelled = errors.New("wizard cancelled")

// NewForm builds the form bound to s. confirmed is set by the last question.
func NewForm(s *State, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("index").
				Title("Test index").
				Description("1-4 are fixed edge cases, 5 and above are random").
				Value(&s.Index).
				Validate(func(v string) error {
					_, err := parseIndex(v)
					return err
				}),
			huh.NewSelect[string]().
				Key("mode").
				Title("Operation").
				Options(
					huh.NewOption("Multiply (x * y)", testcase.Multiply.String()),
					huh.NewOption("Subtract (larger - smaller)", testcase.Subtract.String()),
				).
				Value(&s.Mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("output").
				Title("Expected result file").
				Value(&s.OutputPath),
			huh.NewInput().
				Key("seed").
				Title("Seed").
				Description("Leave empty for a random seed").
				Value(&s.Seed).
				Validate(func(v string) error {
					_, err := parseSeed(v)
					return err
				}),
			huh.NewConfirm().
				Title("Generate now?").
				Affirmative("Generate").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithTheme(huh.ThemeCharm())
}

// Run shows the form prefilled from defaults and returns the chosen options
func Run(defaults generator.Options) (generator.Options, error) {
	state := FromGeneratorOptions(defaults)
	confirmed := true

	if err := NewForm(state, &confirmed).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return generator.Options{}, ErrCancelled
		}
		return generator.Options{}, fmt.Errorf("running wizard: %w", err)
	}
	if !confirmed {
		return generator.Options{}, ErrCancelled
	}

	opts, err := ToGeneratorOptions(state)
	if err != nil {
		return generator.Options{}, err
	}
	opts.Operands = defaults.Operands
	return opts, nil
}

// Summary renders a short report of a finished run
func Summary(opts generator.Options, o testcase.Outcome) string {
	rows := [][2]string{
		{"Index", fmt.Sprintf("%d (%s)", opts.Index, describeCase(opts.Index))},
		{"Mode", opts.Mode.String()},
		{"x", digits(o.X)},
		{"y", digits(o.Y)},
		{"Result", digits(o.Value)},
		{"Written", opts.OutputPath},
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("bignumgen"),
		summaryStyle.Render(b.String()),
	)
}

func digits(v *big.Int) string {
	return humanize.Comma(int64(len(v.String()))) + " digits"
}
