// Package cmdutil holds the flag set and setup steps shared by the binaries.
package cmdutil

import (
	"fmt"

	"github.com/go-logr/logr"
	cli "github.com/urfave/cli/v3"

	"github.com/ToderitaLoredana/PlaneBooking/internal/config"
	"github.com/ToderitaLoredana/PlaneBooking/internal/logging"
)

// CommonFlags configure the engine, logging and config file for every binary.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file",
			Sources: cli.EnvVars(config.EnvPrefix + "_CONFIG"),
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "Path to the flight search executable (engine.path)",
		},
		&cli.StringFlag{
			Name:  "input-file",
			Usage: "Dataset file passed to the engine (engine.input_file)",
		},
		&cli.StringFlag{
			Name:  "output-file",
			Usage: "Shared result file (engine.output_file)",
		},
		&cli.DurationFlag{
			Name:  "engine-timeout",
			Usage: "Kill the engine after this long, 0 disables (engine.timeout)",
		},
		&cli.StringFlag{
			Name:  "isolation",
			Usage: "Result file isolation: per-request or shared (engine.isolation)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "error, info, verbose or debug (logging.level)",
		},
		&cli.BoolFlag{
			Name:  "log-development",
			Usage: "Human readable development logs (logging.development)",
		},
	}
}

// LoadConfig loads the configuration and applies any flags set on cmd.
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("engine") {
		cfg.Engine.Path = cmd.String("engine")
	}
	if cmd.IsSet("input-file") {
		cfg.Engine.InputFile = cmd.String("input-file")
	}
	if cmd.IsSet("output-file") {
		cfg.Engine.OutputFile = cmd.String("output-file")
	}
	if cmd.IsSet("engine-timeout") {
		cfg.Engine.Timeout = cmd.Duration("engine-timeout")
	}
	if cmd.IsSet("isolation") {
		cfg.Engine.Isolation = cmd.String("isolation")
	}
	if cmd.IsSet("log-level") {
		cfg.Logging.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-development") {
		cfg.Logging.Development = cmd.Bool("log-development")
	}
	if cmd.IsSet("addr") {
		cfg.Server.Addr = cmd.String("addr")
	}
	if cmd.IsSet("allowed-origin") {
		cfg.CORS.AllowedOrigin = cmd.String("allowed-origin")
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Exit(fmt.Sprintf("invalid configuration: %v", err), 2)
	}
	return cfg, nil
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg *config.Config) (logr.Logger, error) {
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return logr.Discard(), cli.Exit(err.Error(), 2)
	}
	return logger, nil
}
