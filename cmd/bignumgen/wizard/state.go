// Package wizard provides an interactive form for configuring a generate run.
package wizard

// State holds the form values. huh binds to strings, so numbers are kept as
// text until ToGeneratorOptions converts them.
type State struct {
	Index      string
	Mode       string
	OutputPath string
	Seed       string
}
