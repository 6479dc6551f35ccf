package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
	"github.com/savaki/eb-options/internal/constants"
)

// STSClient defines the STS operations needed for role exchange
type STSClient interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// RoleInput names the role to exchange the base credentials for
type RoleInput struct {
	RoleName  string
	AccountID string
}

// CredentialResolver turns the base AWS config into the config every
// downstream client is built from
type CredentialResolver struct {
	base      aws.Config
	stsClient STSClient
}

// NewCredentialResolver creates a resolver. stsClient must be built from base.
func NewCredentialResolver(base aws.Config, stsClient STSClient) *CredentialResolver {
	return &CredentialResolver{
		base:      base,
		stsClient: stsClient,
	}
}

// RoleARN builds the IAM role ARN for a role in the given account
func RoleARN(accountID, roleName string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)
}

// Resolve returns the base config unchanged unless both a role name and an
// account id are given, in which case the credentials are swapped for the
// temporary ones issued by sts:AssumeRole.
func (r *CredentialResolver) Resolve(ctx context.Context, input RoleInput) (aws.Config, error) {
	logger := zerolog.Ctx(ctx)

	if input.RoleName == "" {
		return r.base, nil
	}
	if input.AccountID == "" {
		logger.Warn().
			Str("role", input.RoleName).
			Msg("AWS Account ID must be provided with the Role to Assume")
		return r.base, nil
	}

	roleARN := RoleARN(input.AccountID, input.RoleName)
	logger.Info().Str("role_arn", roleARN).Msg("Assuming role")

	result, err := r.stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(constants.RoleSessionName),
	})
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to assume role %s: %w", roleARN, err)
	}
	if result.Credentials == nil {
		return aws.Config{}, fmt.Errorf("assume role %s returned no credentials", roleARN)
	}

	creds := aws.Credentials{
		AccessKeyID:     aws.ToString(result.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(result.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(result.Credentials.SessionToken),
		Source:          "AssumeRole",
	}
	if result.Credentials.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *result.Credentials.Expiration
	}

	logger.Info().
		Str("role_arn", roleARN).
		Time("expires", creds.Expires).
		Msg("Role assumed")

	assumed := r.base.Copy()
	assumed.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return creds, nil
	})
	return assumed, nil
}
