package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk"
	"github.com/rs/zerolog"
	"github.com/savaki/eb-options/internal/errors"
	"github.com/savaki/eb-options/internal/utils"
)

// ElasticBeanstalkClient defines the Elastic Beanstalk operations needed to
// push environment properties
type ElasticBeanstalkClient interface {
	DescribeApplications(ctx context.Context, params *elasticbeanstalk.DescribeApplicationsInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeApplicationsOutput, error)
	DescribeEnvironments(ctx context.Context, params *elasticbeanstalk.DescribeEnvironmentsInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeEnvironmentsOutput, error)
	UpdateEnvironment(ctx context.Context, params *elasticbeanstalk.UpdateEnvironmentInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.UpdateEnvironmentOutput, error)
}

// UpdateInput describes one push of a Bundle onto an environment
type UpdateInput struct {
	ApplicationName       string
	EnvironmentName       string
	Bundle                Bundle
	SkipApplicationLookup bool
	DryRun                bool
}

// EnvironmentUpdater writes Bundle entries as environment properties
type EnvironmentUpdater struct {
	client ElasticBeanstalkClient
}

func NewEnvironmentUpdater(client ElasticBeanstalkClient) *EnvironmentUpdater {
	return &EnvironmentUpdater{
		client: client,
	}
}

// FindApplication fails with ErrApplicationNotFound when no application
// matches name
func (u *EnvironmentUpdater) FindApplication(ctx context.Context, name string) error {
	result, err := u.client.DescribeApplications(ctx, &elasticbeanstalk.DescribeApplicationsInput{
		ApplicationNames: []string{name},
	})
	if err != nil {
		return fmt.Errorf("failed to describe application %s: %w", name, err)
	}

	if len(result.Applications) == 0 {
		return fmt.Errorf("%w with name: %s", errors.ErrApplicationNotFound, name)
	}

	return nil
}

// FindEnvironmentID resolves an environment name within an application to
// its environment id. Terminated environments are ignored.
func (u *EnvironmentUpdater) FindEnvironmentID(ctx context.Context, applicationName, environmentName string) (string, error) {
	result, err := u.client.DescribeEnvironments(ctx, &elasticbeanstalk.DescribeEnvironmentsInput{
		ApplicationName:  aws.String(applicationName),
		EnvironmentNames: []string{environmentName},
		IncludeDeleted:   aws.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe environment %s: %w", environmentName, err)
	}

	if len(result.Environments) == 0 {
		return "", fmt.Errorf("%w with name: %s", errors.ErrEnvironmentNotFound, environmentName)
	}

	environmentID := aws.ToString(result.Environments[0].EnvironmentId)
	if environmentID == "" {
		return "", fmt.Errorf("%w with name: %s (missing environment id)", errors.ErrEnvironmentNotFound, environmentName)
	}

	return environmentID, nil
}

// Update applies every Bundle entry to the named environment in a single
// UpdateEnvironment call. Earlier values for the same keys are overwritten.
func (u *EnvironmentUpdater) Update(ctx context.Context, input UpdateInput) error {
	logger := zerolog.Ctx(ctx)

	if !input.SkipApplicationLookup {
		if err := u.FindApplication(ctx, input.ApplicationName); err != nil {
			return err
		}
	}

	environmentID, err := u.FindEnvironmentID(ctx, input.ApplicationName, input.EnvironmentName)
	if err != nil {
		return err
	}

	settings := utils.OptionSettings(input.Bundle)

	if input.DryRun {
		logger.Info().
			Str("environment_id", environmentID).
			Strs("options", utils.OptionNames(settings)).
			Msg("DRY RUN: environment not updated")
		return nil
	}

	result, err := u.client.UpdateEnvironment(ctx, &elasticbeanstalk.UpdateEnvironmentInput{
		EnvironmentId:  aws.String(environmentID),
		OptionSettings: settings,
	})
	if err != nil {
		return fmt.Errorf("failed to update environment %s: %w", environmentID, err)
	}

	logger.Info().
		Str("environment_id", aws.ToString(result.EnvironmentId)).
		Str("environment_name", aws.ToString(result.EnvironmentName)).
		Str("status", string(result.Status)).
		Str("version_label", aws.ToString(result.VersionLabel)).
		Int("options", len(settings)).
		Msg("Environment variables updated")

	return nil
}
