package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/ToderitaLoredana/PlaneBooking/internal/cmdutil"
	"github.com/ToderitaLoredana/PlaneBooking/internal/engine"
	"github.com/ToderitaLoredana/PlaneBooking/internal/search"
)

func main() {
	app := &cli.Command{
		Name:  "planebooking-search",
		Usage: "Run one flight search and print the engine's result",
		Flags: append(cmdutil.CommonFlags(),
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Departure airport code",
				Value:   "JFK",
			},
			&cli.StringFlag{
				Name:    "destination",
				Aliases: []string{"d"},
				Usage:   "Arrival airport code",
				Value:   "LAX",
			},
			&cli.StringFlag{
				Name:  "day",
				Usage: "Day of travel",
				Value: "monday",
			},
			&cli.StringFlag{
				Name:  "departure-time",
				Usage: "Earliest departure, passed to the engine as is",
				Value: "480",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			q := engine.Query{
				Source:        cmd.String("source"),
				Destination:   cmd.String("destination"),
				Day:           cmd.String("day"),
				DepartureTime: cmd.String("departure-time"),
			}
			if err := q.Validate(); err != nil {
				return cli.Exit(err.Error(), 2)
			}

			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := cmdutil.NewLogger(cfg)
			if err != nil {
				return err
			}

			svc := search.NewService(cfg.Engine, engine.NewExecInvoker(cfg.Engine.Timeout), logger)
			return runSearch(ctx, svc, q, os.Stdout)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSearch(ctx context.Context, svc *search.Service, q engine.Query, out io.Writer) error {
	res := svc.Run(ctx, q)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Document); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if err := res.Outcome.Err(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
