// @title			Due Date API
// @version		1.0
// @description	Calculates issue due dates on a Monday-Friday working calendar.
// @BasePath		/api/v1

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/duedate/internal/config"
	"github.com/mtlprog/duedate/internal/domain"
	"github.com/mtlprog/duedate/internal/handler"
	"github.com/mtlprog/duedate/internal/logger"
	"github.com/mtlprog/duedate/internal/service"
)

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "duedate",
		Usage: "Calculate issue due dates on a working calendar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   config.DefaultLogFormat,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "calendar",
				Aliases: []string{"c"},
				Value:   config.DefaultCalendarPath,
				Usage:   "Path to a YAML working calendar file",
				EnvVars: []string{"DUEDATE_CALENDAR"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "calculate",
				Usage: "Print the due date for a single submission",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "submit",
						Aliases:  []string{"s"},
						Usage:    "Submit time, e.g. \"2020-01-31 10:05\"",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "turnover",
						Aliases:  []string{"t"},
						Usage:    "Turnover in working hours",
						Required: true,
					},
				},
				Action: runCalculate,
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
		},
	}
}

func newCalculator(c *cli.Context) (*service.Calculator, error) {
	cal, err := config.LoadCalendar(c.String("calendar"))
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}

	slog.Debug("calendar loaded", "start_hour", cal.StartHour, "end_hour", cal.EndHour)
	return service.NewCalculator(cal), nil
}

func runCalculate(c *cli.Context) error {
	calculator, err := newCalculator(c)
	if err != nil {
		return err
	}

	submitTime, err := domain.ParseSubmitTime(c.String("submit"))
	if err != nil {
		return err
	}

	due, err := calculator.CalculateDueDate(domain.NewSubmissionRequest(submitTime, c.Int("turnover")))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, domain.FormatDueDate(due))
	return err
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	calculator, err := newCalculator(c)
	if err != nil {
		return err
	}

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	h := handler.New(calculator)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
