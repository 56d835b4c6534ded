package main

//
//  @title           tw-stock-fluctuation-calc API
//  @version         1.0
//  @description     Daily price fluctuation limit calculator for TWSE-listed securities.
//  @termsOfService  https://github.com/codeotter0201/tw-stock-fluctuation-calc
//  @contact.name    API Support
//  @contact.url     https://github.com/codeotter0201/tw-stock-fluctuation-calc
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        fluctuation
//  @tag.description Endpoints for computing daily price fluctuation ranges
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/config"
	_ "github.com/codeotter0201/tw-stock-fluctuation-calc/docs" // swagger docs
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/app"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/fluctuation"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/logger"
)

// runCalc computes the fluctuation range for a single price and writes the
// result to out. The CLI wrapper around the calculator core.
//
// Parameters:
//   - price (string): reference price as given on the command line.
//   - out (io.Writer): destination for the formatted result.
//
// Returns:
//   - error: the calculator's *InvalidPriceError when the price is rejected.
func runCalc(price string, out io.Writer) error {
	table := fluctuation.BuildRangeTable()
	lower, upper, err := fluctuation.ComputeFluctuationRange(price, table)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "price=%s lower=%.2f upper=%.2f\n", price, lower, upper)
	return err
}

// runServer starts the HTTP server and blocks until ctx is canceled (OS
// signal) or the listener fails, then shuts the server down gracefully.
//
// Parameters:
//   - ctx (context.Context): canceled to trigger shutdown.
//   - router (http.Handler): the configured Gin engine.
//   - port (string): TCP port to listen on.
//   - cleanup (func()): resource release callback, run after shutdown.
//
// Returns:
//   - error: listener or shutdown failure, nil on a clean exit.
func runServer(ctx context.Context, router http.Handler, port string, cleanup func()) error {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Fires on signal (ctx) or when the listener goroutine fails.
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	cleanup()
	if err == nil {
		logger.L().Info().Msg("server exited gracefully")
	}
	return err
}

// main is the entry point of the fluctuation calculator.
//
// Modes (selected via --mode flag):
//   - calc: Computes the fluctuation range for a single price and exits.
//   - api:  Starts the REST API exposing the calculation.
//
// Flags:
//   - --mode:  Execution mode ("calc" or "api"). Default: "calc".
//   - --price: Reference price for calc mode.
//   - --port:  Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "calc", "Mode: calc or api")
	price := flag.String("price", "", "Reference price for calc mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "calc":
		if *price == "" {
			logger.L().Fatal().Msg("calc mode requires --price")
		}
		if err := runCalc(*price, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runServer(ctx, router, *port, cleanup); err != nil {
			logger.L().Fatal().Err(err).Msg("server error")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
