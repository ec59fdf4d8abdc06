// @title PlaneBooking Flight Search API
// @version 1.0
// @description Runs the external flight search engine and returns its result document.
// @host localhost:8000
// @BasePath /
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"github.com/ToderitaLoredana/PlaneBooking/internal/cmdutil"
	"github.com/ToderitaLoredana/PlaneBooking/internal/daemon"
	_ "github.com/ToderitaLoredana/PlaneBooking/internal/docs"
	"github.com/ToderitaLoredana/PlaneBooking/internal/engine"
	"github.com/ToderitaLoredana/PlaneBooking/internal/metrics"
	"github.com/ToderitaLoredana/PlaneBooking/internal/search"
)

func main() {
	app := &cli.Command{
		Name:  "planebooking-daemon",
		Usage: "Serve the flight search API",
		Flags: append(cmdutil.CommonFlags(),
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address (server.addr)",
			},
			&cli.StringFlag{
				Name:  "allowed-origin",
				Usage: "Frontend origin allowed by CORS (cors.allowed_origin)",
			},
		),
		Action: serve,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := cmdutil.NewLogger(cfg)
	if err != nil {
		return err
	}

	metrics.Register()
	svc := search.NewService(cfg.Engine, engine.NewExecInvoker(cfg.Engine.Timeout), logger)
	server := daemon.NewServer(*cfg, svc, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", cfg.Server.Addr, "engine", cfg.Engine.Path, "isolation", cfg.Engine.Isolation)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error(err, "Server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "Server forced to shutdown")
		return err
	}
	logger.Info("Server exited")
	return nil
}
