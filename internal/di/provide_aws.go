package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
	"github.com/savaki/eb-options/internal/config"
	"github.com/savaki/eb-options/internal/services"
)

// BaseAWSConfig is the AWS config before any role exchange
type BaseAWSConfig aws.Config

// ProvideBaseAWSConfig loads the AWS config for the configured region. A
// complete static key pair is used verbatim; otherwise the SDK default
// credential chain applies. Retries are disabled.
func ProvideBaseAWSConfig(ctx context.Context, cfg config.Config) (BaseAWSConfig, error) {
	logger := zerolog.Ctx(ctx)

	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}

	switch {
	case cfg.HasStaticCredentials():
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	case cfg.AccessKeyID != "" || cfg.SecretAccessKey != "":
		logger.Warn().Msg("Incomplete static key pair, falling back to the default credential chain")
	default:
		logger.Debug().Msg("No static key pair, using the default credential chain")
	}

	loaded, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return BaseAWSConfig{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return BaseAWSConfig(loaded), nil
}

func ProvideSTSClient(base BaseAWSConfig) services.STSClient {
	return sts.NewFromConfig(aws.Config(base))
}

func ProvideCredentialResolver(base BaseAWSConfig, stsClient services.STSClient) *services.CredentialResolver {
	return services.NewCredentialResolver(aws.Config(base), stsClient)
}

// ProvideAWSConfig resolves the credentials every downstream client uses
func ProvideAWSConfig(ctx context.Context, resolver *services.CredentialResolver, cfg config.Config) (aws.Config, error) {
	return resolver.Resolve(ctx, services.RoleInput{
		RoleName:  cfg.RoleToAssume,
		AccountID: cfg.AWSAccountID,
	})
}

func ProvideSecretsManagerClient(cfg aws.Config) services.SecretsManagerClient {
	return secretsmanager.NewFromConfig(cfg)
}

// ProvideSSMClient provides an SSM client for Parameter Store backed secrets
func ProvideSSMClient(cfg aws.Config) services.SSMClient {
	return ssm.NewFromConfig(cfg)
}

func ProvideElasticBeanstalkClient(cfg aws.Config) services.ElasticBeanstalkClient {
	return elasticbeanstalk.NewFromConfig(cfg)
}
