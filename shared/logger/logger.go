package logger

import (
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"hotel/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// consoleEnvs get the human readable writer; every other environment logs JSON lines.
var consoleEnvs = []string{"", "local", "development"}

// InitLogger installs a console logger so configuration loading can already log.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = New(os.Stdout, true, "")
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches the global logger to the configured environment, service name and level.
func Configure(cfg *config.Config) {
	console := slices.Contains(consoleEnvs, strings.ToLower(cfg.Server.Env))
	level := ParseLevel(cfg.Server.LogLevel)

	log.Logger = New(os.Stdout, console, cfg.App.Name)
	zerolog.SetGlobalLevel(level)

	log.Debug().Str("env", cfg.Server.Env).Str("loglevel", level.String()).Msg("logger configured")
}

func New(out io.Writer, console bool, service string) zerolog.Logger {
	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}

	return ctx.Logger()
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
