package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/riskfacts/riskfacts/internal/config"
	"github.com/riskfacts/riskfacts/internal/domain/profile"
	"github.com/riskfacts/riskfacts/internal/platform/middleware"
	"github.com/riskfacts/riskfacts/internal/ruleset"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "riskfacts-server",
		Short: "Questionnaire standardization and derived-facts API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(rulesetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the derivation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func rulesetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ruleset",
		Short: "Inspect threshold rulesets",
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a ruleset file without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")

			var (
				rs  *ruleset.Ruleset
				err error
			)
			if path == "" {
				rs, err = ruleset.Default()
			} else {
				rs, err = ruleset.LoadFile(path)
			}
			if err != nil {
				return fmt.Errorf("ruleset invalid: %w", err)
			}

			fmt.Printf("Ruleset %s is valid.\n", rs.Version)
			return nil
		},
	}
	validateCmd.Flags().String("file", "", "Path to a ruleset JSON file (default: embedded ruleset)")
	cmd.AddCommand(validateCmd)

	return cmd
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger().Level(level)
	}
	return logger
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logger
	logger := newLogger(cfg)

	// Ruleset
	var rs *ruleset.Ruleset
	if cfg.RulesetPath != "" {
		rs, err = ruleset.LoadFile(cfg.RulesetPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.RulesetPath).Msg("failed to load ruleset")
		}
		logger.Info().Str("path", cfg.RulesetPath).Str("version", rs.Version).Msg("loaded ruleset file")
	} else {
		rs, err = ruleset.Default()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load embedded ruleset")
		}
		logger.Info().Str("version", rs.Version).Msg("using embedded ruleset")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	svc := profile.NewService(rs, logger)
	handler := profile.NewHandler(svc)
	handler.RegisterRoutes(apiV1)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":          "ok",
			"ruleset_version": rs.Version,
		})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
