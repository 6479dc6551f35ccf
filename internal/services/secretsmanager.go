package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog"
)

// SecretsManagerClient abstracts Secrets Manager operations for testing
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type SecretsManagerService struct {
	client SecretsManagerClient
}

func NewSecretsManagerService(client SecretsManagerClient) *SecretsManagerService {
	return &SecretsManagerService{
		client: client,
	}
}

// GetSecret retrieves the string value of a secret. ok is false when the
// secret has no SecretString (binary secrets).
func (s *SecretsManagerService) GetSecret(ctx context.Context, secretID string) (value string, ok bool, err error) {
	result, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get secret %s: %w", secretID, err)
	}

	if result.SecretString == nil {
		return "", false, nil
	}

	return *result.SecretString, true, nil
}

// FetchBundle retrieves a secret from AWS Secrets Manager and decodes it
func (s *SecretsManagerService) FetchBundle(ctx context.Context, secretID string) (Bundle, bool, error) {
	logger := zerolog.Ctx(ctx)

	payload, ok, err := s.GetSecret(ctx, secretID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		logger.Info().Str("secret", secretID).Msg("Secret has no string value, nothing to propagate")
		return nil, false, nil
	}

	bundle, err := DecodeBundle(payload)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode secret %s: %w", secretID, err)
	}

	logger.Info().
		Str("secret", secretID).
		Int("keys", len(bundle)).
		Msg("Secret fetched")

	return bundle, true, nil
}
