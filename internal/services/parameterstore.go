package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog"
)

// SSMClient abstracts Parameter Store operations for testing
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ParameterStoreService reads the secret payload from an SSM parameter,
// usually a SecureString holding the same JSON object a Secrets Manager
// secret would
type ParameterStoreService struct {
	client SSMClient
}

// NewParameterStoreService creates a new SSM-backed secret fetcher
func NewParameterStoreService(client SSMClient) *ParameterStoreService {
	return &ParameterStoreService{
		client: client,
	}
}

// FetchBundle retrieves a parameter with decryption and decodes it
func (p *ParameterStoreService) FetchBundle(ctx context.Context, name string) (Bundle, bool, error) {
	logger := zerolog.Ctx(ctx)

	result, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get parameter %s: %w", name, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		logger.Info().Str("parameter", name).Msg("Parameter has no value, nothing to propagate")
		return nil, false, nil
	}

	bundle, err := DecodeBundle(*result.Parameter.Value)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode parameter %s: %w", name, err)
	}

	logger.Info().
		Str("parameter", name).
		Int("keys", len(bundle)).
		Msg("Parameter fetched")

	return bundle, true, nil
}
