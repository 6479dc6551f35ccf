// Package workflow runs the fetch-and-propagate pass for a single CI run.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/savaki/eb-options/internal/config"
	"github.com/savaki/eb-options/internal/services"
)

// Updater pushes a Bundle onto an Elastic Beanstalk environment
type Updater interface {
	Update(ctx context.Context, input services.UpdateInput) error
}

// Workflow fetches the secret and, when allowed, propagates it. Credentials
// are resolved before a Workflow is built, so its clients already carry them.
type Workflow struct {
	config  config.Config
	fetcher services.SecretFetcher
	updater Updater
}

// New creates a new Workflow
func New(cfg config.Config, fetcher services.SecretFetcher, updater Updater) *Workflow {
	return &Workflow{
		config:  cfg,
		fetcher: fetcher,
		updater: updater,
	}
}

// Run returns an error only when the secret cannot be fetched or decoded.
// Update failures are logged and swallowed so a failed push never fails the
// CI job.
func (w *Workflow) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	bundle, found, err := w.fetcher.FetchBundle(ctx, w.config.SecretID)
	if err != nil {
		return fmt.Errorf("failed to fetch secret: %w", err)
	}
	if !found {
		return nil
	}

	if !w.config.PropagationAllowed() {
		logger.Info().
			Str("node_env", w.config.NodeEnv).
			Bool("github_actions", w.config.GitHubActions).
			Msg("Skipping environment update outside GitHub Actions in production")
		return nil
	}

	err = w.updater.Update(ctx, services.UpdateInput{
		ApplicationName:       w.config.ApplicationName,
		EnvironmentName:       w.config.EnvironmentName,
		Bundle:                bundle,
		SkipApplicationLookup: w.config.SkipApplicationLookup,
		DryRun:                w.config.DryRun,
	})
	if err != nil {
		event := logger.Error().
			Err(err).
			Str("application", w.config.ApplicationName).
			Str("environment", w.config.EnvironmentName)

		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			event = event.Str("error_code", apiErr.ErrorCode())
		}
		event.Msg("Failed to update environment variables")
	}

	return nil
}
