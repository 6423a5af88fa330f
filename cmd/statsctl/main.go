// Command statsctl queries player seasons from the command line.
//
// Usage:
//
//	statsctl search --first Stephen --last Curry
//	statsctl seasons --player 201939
//	statsctl stats --player 201939 --season 2015-16
//	statsctl ask --player 201939 --question "How many threes per game?"
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/server"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	logger := logging.NewLoggerTo(logging.Config{
		Level:   envOr("LOG_LEVEL", "warn"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "statsctl",
	}, os.Stderr)

	root := newRootCmd(defaultServices, logger, os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultServices(cfg config.Config, logger *slog.Logger) *server.Services {
	return server.NewServices(cfg, logger, nil)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
