package main

import (
	"context"
	"os"

	"github.com/savaki/eb-options/cmd/eb-options/commands"
	"github.com/savaki/eb-options/internal/di"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := di.ProvideLogger()
	ctx := logger.WithContext(context.Background())

	app := &cli.App{
		Name:  "eb-options",
		Usage: "Push a JSON secret onto an Elastic Beanstalk environment",
		Description: `Fetches a JSON object from AWS Secrets Manager (or SSM Parameter Store) and
writes each key/value pair as an environment property of an Elastic Beanstalk
environment.

Every setting can be given as a flag or as an environment variable. The
GitHub Actions input form (INPUT_*) takes precedence over the bare form.`,
		DefaultCommand: "push",
		Before: func(c *cli.Context) error {
			return commands.PrepareEnvironment(c.Context)
		},
		Commands: []*cli.Command{
			commands.PushCommand(&logger),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("Application error")
		os.Exit(1)
	}
}
