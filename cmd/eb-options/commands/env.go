package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// envFileVar names the variable that points at an alternative .env file
const envFileVar = "EB_OPTIONS_ENV_FILE"

// PrepareEnvironment runs before flags read their environment variables. It
// loads the .env file, if any, without overriding variables already set, and
// unsets empty INPUT_* variables so the bare form of a setting still applies
// when an action input is left blank.
func PrepareEnvironment(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("No env file found")
	} else {
		logger.Info().Str("path", path).Msg("Loaded env file")
	}

	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "INPUT_") && value == "" {
			if err := os.Unsetenv(key); err != nil {
				return fmt.Errorf("failed to unset %s: %w", key, err)
			}
		}
	}

	return nil
}
