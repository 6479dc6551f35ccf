package constants

// Elastic Beanstalk option settings
const (
	// OptionNamespace is the namespace Elastic Beanstalk reads environment
	// properties from
	OptionNamespace = "aws:elasticbeanstalk:application:environment"
)

// Role exchange
const (
	// RoleSessionName labels every STS session opened by the resolver
	RoleSessionName = "AssumeRoleSession"
)

// Defaults applied when configuration leaves a value empty
const (
	DefaultRegion = "eu-west-1"

	// ProductionNodeEnv is the NODE_ENV value that blocks propagation
	// outside of GitHub Actions
	ProductionNodeEnv = "production"
)

// Secret store kinds
const (
	SecretStoreSecretsManager = "secretsmanager"
	SecretStoreParameterStore = "ssm"
)
