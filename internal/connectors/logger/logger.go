package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"

	"github.com/lidofinance/betfair-aping/internal/env"
)

func New(cfg *env.AppConfig) *slog.Logger {
	logLevel := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		logLevel = slog.LevelDebug
	case "INFO":
		logLevel = slog.LevelInfo
	case "WARN":
		logLevel = slog.LevelWarn
	case "ERROR":
		logLevel = slog.LevelError
	}

	zerologLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	if cfg.LogFormat == "json" {
		zerologLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	return slog.New(
		slogzerolog.Option{Level: logLevel, Logger: &zerologLogger}.NewZerologHandler(),
	).With(slog.String("app", cfg.Name), slog.String("env", cfg.Env))
}
