package di

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/savaki/eb-options/internal/config"
	"github.com/savaki/eb-options/internal/constants"
	"github.com/savaki/eb-options/internal/errors"
	"github.com/savaki/eb-options/internal/services"
	"github.com/savaki/eb-options/internal/workflow"
)

// ProvideSecretFetcher selects the secret store named in the config
func ProvideSecretFetcher(ctx context.Context, cfg config.Config, secretsManager *services.SecretsManagerService, parameterStore *services.ParameterStoreService) (services.SecretFetcher, error) {
	logger := zerolog.Ctx(ctx)

	switch cfg.SecretStore {
	case constants.SecretStoreSecretsManager:
		logger.Debug().Msg("Using AWS Secrets Manager as secret store")
		return secretsManager, nil
	case constants.SecretStoreParameterStore:
		logger.Debug().Msg("Using AWS Systems Manager Parameter Store as secret store")
		return parameterStore, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownSecretStore, cfg.SecretStore)
	}
}

func ProvideWorkflow(cfg config.Config, fetcher services.SecretFetcher, updater *services.EnvironmentUpdater) *workflow.Workflow {
	return workflow.New(cfg, fetcher, updater)
}
