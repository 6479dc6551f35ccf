package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/savaki/eb-options/internal/config"
	"github.com/savaki/eb-options/internal/constants"
	"github.com/savaki/eb-options/internal/di"
	"github.com/savaki/eb-options/internal/workflow"
	"github.com/urfave/cli/v2"
	"go.uber.org/dig"
)

// PushCommand returns the push command, which fetches the secret and writes it
// onto the target environment
func PushCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "push",
		Usage: "Fetch the secret and apply it as environment properties",
		Description: `Resolves credentials (optionally assuming ROLE_TO_ASSUME in AWS_ACCOUNT_ID),
fetches the secret, and applies every key as an environment property of
APPLICATION_NAME/ENVIRONMENT_NAME in a single UpdateEnvironment call.

Outside GitHub Actions the update is skipped when NODE_ENV=production.
A failed update is logged but does not change the exit status; a failed
fetch does.

Examples:
  # Push using environment variables only
  AWS_SECRET=my-app/prod APPLICATION_NAME=my-app ENVIRONMENT_NAME=my-app-prod eb-options

  # Assume a role in another account
  eb-options push --secret my-app/prod --application-name my-app \
    --environment-name my-app-prod --role-to-assume deployer --aws-account-id 123456789012

  # Show which options would be written without updating
  eb-options push --secret my-app/prod --application-name my-app \
    --environment-name my-app-prod --dry-run`,
		Flags: PushFlags(),
		Action: func(c *cli.Context) error {
			return pushAction(c, logger)
		},
	}
}

// PushFlags lists the flags of the push command with their environment
// variables, first match wins
func PushFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region",
			Value:   constants.DefaultRegion,
			EnvVars: []string{"INPUT_REGION", "AWS_REGION", "REGION"},
		},
		&cli.StringFlag{
			Name:    "secret",
			Aliases: []string{"s"},
			Usage:   "Secret id (Secrets Manager name or ARN, or SSM parameter name)",
			EnvVars: []string{"INPUT_AWS_SECRET", "AWS_SECRET"},
		},
		&cli.StringFlag{
			Name:    "secret-store",
			Usage:   "Where the secret lives: secretsmanager or ssm",
			Value:   constants.SecretStoreSecretsManager,
			EnvVars: []string{"INPUT_SECRET_STORE", "SECRET_STORE"},
		},
		&cli.StringFlag{
			Name:    "application-name",
			Aliases: []string{"a"},
			Usage:   "Elastic Beanstalk application name",
			EnvVars: []string{"INPUT_APPLICATION_NAME", "APPLICATION_NAME"},
		},
		&cli.StringFlag{
			Name:    "environment-name",
			Aliases: []string{"e"},
			Usage:   "Elastic Beanstalk environment name",
			EnvVars: []string{"INPUT_ENVIRONMENT_NAME", "ENVIRONMENT_NAME"},
		},
		&cli.StringFlag{
			Name:    "role-to-assume",
			Usage:   "IAM role name to assume before fetching (requires --aws-account-id)",
			EnvVars: []string{"INPUT_ROLE_TO_ASSUME", "ROLE_TO_ASSUME"},
		},
		&cli.StringFlag{
			Name:    "aws-account-id",
			Usage:   "AWS account id owning --role-to-assume",
			EnvVars: []string{"INPUT_AWS_ACCOUNT_ID", "AWS_ACCOUNT_ID"},
		},
		&cli.StringFlag{
			Name:    "access-key",
			Usage:   "Static AWS access key id",
			EnvVars: []string{"INPUT_AWS_ACCESS_KEY", "AWS_ACCESS_KEY_ID", "AWS_ACCESS_KEY"},
		},
		&cli.StringFlag{
			Name:    "secret-key",
			Usage:   "Static AWS secret access key",
			EnvVars: []string{"INPUT_AWS_SECRET_KEY", "AWS_SECRET_ACCESS_KEY", "AWS_SECRET_KEY"},
		},
		&cli.StringFlag{
			Name:    "node-env",
			Usage:   "Deployment environment; production blocks updates outside GitHub Actions",
			EnvVars: []string{"NODE_ENV"},
		},
		// any non-empty value means GitHub Actions, so this is not a BoolFlag
		&cli.StringFlag{
			Name:    "github-actions",
			Usage:   "Set to any non-empty value inside GitHub Actions; updates always run",
			EnvVars: []string{"GITHUB_ACTIONS"},
		},
		&cli.BoolFlag{
			Name:    "skip-application-lookup",
			Usage:   "Do not check that the application exists before looking up the environment",
			EnvVars: []string{"INPUT_SKIP_APPLICATION_LOOKUP", "SKIP_APPLICATION_LOOKUP"},
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Usage:   "Resolve the environment and list the options without updating",
			EnvVars: []string{"INPUT_DRY_RUN", "DRY_RUN"},
		},
	}
}

// ConfigFromCLI builds the run configuration from parsed flags
func ConfigFromCLI(c *cli.Context) config.Config {
	return config.Config{
		Region:                c.String("region"),
		SecretID:              c.String("secret"),
		SecretStore:           c.String("secret-store"),
		ApplicationName:       c.String("application-name"),
		EnvironmentName:       c.String("environment-name"),
		RoleToAssume:          c.String("role-to-assume"),
		AWSAccountID:          c.String("aws-account-id"),
		AccessKeyID:           c.String("access-key"),
		SecretAccessKey:       c.String("secret-key"),
		NodeEnv:               c.String("node-env"),
		GitHubActions:         c.String("github-actions") != "",
		SkipApplicationLookup: c.Bool("skip-application-lookup"),
		DryRun:                c.Bool("dry-run"),
	}.WithDefaults()
}

func pushAction(c *cli.Context, logger *zerolog.Logger, opts ...di.Option) error {
	ctx := logger.WithContext(c.Context)

	cfg := ConfigFromCLI(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info().
		Str("region", cfg.Region).
		Str("secret", cfg.SecretID).
		Str("secret_store", cfg.SecretStore).
		Str("aws_account_id", cfg.AWSAccountID).
		Str("application", cfg.ApplicationName).
		Str("environment", cfg.EnvironmentName).
		Bool("dry_run", cfg.DryRun).
		Msg("Starting")

	container, err := di.New(cfg, append([]di.Option{di.WithContext(ctx)}, opts...)...)
	if err != nil {
		return fmt.Errorf("failed to create DI container: %w", err)
	}

	// Building the workflow resolves credentials; a rejected role exchange
	// surfaces here
	wf, err := di.Get[*workflow.Workflow](container)
	if err != nil {
		return dig.RootCause(err)
	}

	if err := wf.Run(ctx); err != nil {
		return err
	}

	logger.Info().Msg("Done")
	return nil
}
