package di

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

// ProvideLogger creates a new zerolog.Logger configured for the runtime environment.
// In GitHub Actions (when GITHUB_ACTIONS is set) colors are disabled since the
// job log does not render them. RUNNER_DEBUG=1 turns on debug output, matching
// the "Enable debug logging" re-run option. Every logger carries a run_id.
func ProvideLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("RUNNER_DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: os.Getenv("GITHUB_ACTIONS") != "",
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("run_id", ksuid.New().String()).
		Logger()
}
