package errors

import "errors"

var (
	ErrSecretRequired          = errors.New("secret id is required")
	ErrApplicationNameRequired = errors.New("application name is required")
	ErrEnvironmentNameRequired = errors.New("environment name is required")
	ErrUnknownSecretStore      = errors.New("unknown secret store")
	ErrSecretUndecodable       = errors.New("secret payload is not a JSON object")
	ErrApplicationNotFound     = errors.New("no application found")
	ErrEnvironmentNotFound     = errors.New("no environment found")
)
