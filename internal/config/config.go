// Package config holds the settings for a single eb-options run.
package config

import (
	"fmt"

	"github.com/savaki/eb-options/internal/constants"
	"github.com/savaki/eb-options/internal/errors"
)

// Config is read once at startup and passed by value afterwards
type Config struct {
	Region          string
	SecretID        string
	SecretStore     string // "secretsmanager" or "ssm"
	ApplicationName string
	EnvironmentName string
	RoleToAssume    string
	AWSAccountID    string
	AccessKeyID     string
	SecretAccessKey string
	NodeEnv         string
	GitHubActions   bool

	// SkipApplicationLookup disables the DescribeApplications precondition
	SkipApplicationLookup bool

	// DryRun resolves the target environment but never updates it
	DryRun bool
}

// WithDefaults returns a copy with empty optional fields filled in
func (c Config) WithDefaults() Config {
	if c.Region == "" {
		c.Region = constants.DefaultRegion
	}
	if c.SecretStore == "" {
		c.SecretStore = constants.SecretStoreSecretsManager
	}
	return c
}

// Validate reports the first missing or malformed setting
func (c Config) Validate() error {
	if c.SecretID == "" {
		return errors.ErrSecretRequired
	}
	if c.ApplicationName == "" {
		return errors.ErrApplicationNameRequired
	}
	if c.EnvironmentName == "" {
		return errors.ErrEnvironmentNameRequired
	}
	switch c.SecretStore {
	case constants.SecretStoreSecretsManager, constants.SecretStoreParameterStore:
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownSecretStore, c.SecretStore)
	}
	return nil
}

// HasStaticCredentials is true when both halves of the key pair are set
func (c Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// PropagationAllowed gates the update step. Runs inside GitHub Actions are
// always allowed; elsewhere only non-production NODE_ENV values are.
func (c Config) PropagationAllowed() bool {
	if c.GitHubActions {
		return true
	}
	return c.NodeEnv != constants.ProductionNodeEnv
}
