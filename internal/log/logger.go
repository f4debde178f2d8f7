// Package log configures the zerolog loggers used across bignumgen.
// Every logger writes to stderr; stdout is reserved for generated operands.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

var (
	Root      = zerolog.Nop()
	Generator = zerolog.Nop()
	Output    = zerolog.Nop()
	Suite     = zerolog.Nop()
)

// Options for Init
type Options struct {
	LogLevel zerolog.Level
	Type     LoggerType
	// Out defaults to os.Stderr
	Out io.Writer
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	if loglevel == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(loglevel))
}

func ParseLoggerType(s string) (LoggerType, error) {
	switch strings.ToLower(s) {
	case "", "console":
		return ConsoleLogger, nil
	case "json":
		return JSONLogger, nil
	default:
		return ConsoleLogger, fmt.Errorf("invalid log format %q (valid: console, json)", s)
	}
}

func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	switch opts.Type {
	case ConsoleLogger:
		Root = zerolog.New(newConsoleWriter(out)).Level(opts.LogLevel).
			With().Timestamp().Logger()
	default:
		Root = zerolog.New(out).Level(opts.LogLevel).
			With().Timestamp().Logger()
	}
	Generator = Root.With().Str("component", "generator").Logger()
	Output = Root.With().Str("component", "output").Logger()
	Suite = Root.With().Str("component", "suite").Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	cw.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s=", i)
	}
	return cw
}
