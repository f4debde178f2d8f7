package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mrsinham/bignumgen/internal/config"
	"github.com/mrsinham/bignumgen/internal/log"
)

// settings holds the effective configuration: flags, then environment, then
// the config file, then defaults.
type settings struct {
	cfg config.Config
}

func (s *settings) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "expected result file",
			EnvVars: []string{"BIGNUMGEN_OUTPUT"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "seed for random cases (0 = random each run)",
			EnvVars: []string{"BIGNUMGEN_SEED"},
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "load configuration from YAML file",
		},
		&cli.StringFlag{
			Name:  "save-config",
			Usage: "save the effective configuration to a YAML file",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "trace, debug, info, warn, error",
			EnvVars: []string{"BIGNUMGEN_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "console or json",
		},
	}
}

// load runs before any action
func (s *settings) load(c *cli.Context) error {
	s.cfg = config.Default()
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		s.cfg = cfg
	}

	if c.IsSet("output") {
		s.cfg.Output = c.String("output")
	}
	if c.IsSet("seed") {
		s.cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("log-level") {
		s.cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		s.cfg.LogFormat = c.String("log-format")
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLogLevel(s.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	typ, err := log.ParseLoggerType(s.cfg.LogFormat)
	if err != nil {
		return err
	}
	log.Init(log.Options{LogLevel: level, Type: typ, Out: c.App.ErrWriter})

	if path := c.String("save-config"); path != "" {
		if err := config.Save(s.cfg, path); err != nil {
			return err
		}
		log.Root.Info().Str("path", path).Msg("configuration saved")
	}
	return nil
}
