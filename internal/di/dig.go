// Package di provides a lightweight wrapper around uber's dig dependency injection framework.
// It simplifies container setup and provides type-safe dependency retrieval with generics.
package di

import (
	"context"

	"github.com/savaki/eb-options/internal/config"
	"github.com/savaki/eb-options/internal/services"
	"go.uber.org/dig"
)

// Container defines a dependency injection container based on uber's dig.
type Container interface {
	// Invoke executes a function, injecting its dependencies from the container.
	Invoke(function any, opts ...dig.InvokeOption) error

	// Decorate replaces a value already provided by the container.
	Decorate(decorator any, opts ...dig.DecorateOption) error
}

// Get returns an instance constructed via dependency injection. Provider
// errors, such as a rejected role exchange, are returned wrapped by dig;
// use dig.RootCause to recover them.
//
// Example:
//
//	wf, err := Get[*workflow.Workflow](container)
func Get[T any](container Container) (want T, err error) {
	err = container.Invoke(func(got T) {
		want = got
	})
	return want, err
}

// New creates a new dependency injection container for the given run
// configuration. The config is registered as a config.Config dependency and
// the context as a context.Context dependency.
//
// Example:
//
//	container, err := New(cfg,
//	    WithContext(ctx),
//	    WithDecorators(func() services.ElasticBeanstalkClient { return fake }),
//	)
func New(cfg config.Config, opts ...Option) (Container, error) {
	// Build options
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	// Create dig container
	container := dig.New()
	if err := container.Provide(func() config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() context.Context { return o.ctx }); err != nil {
		return nil, err
	}

	// Register all provided constructors
	for _, provider := range core {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	for _, decorator := range o.decorators {
		if err := container.Decorate(decorator); err != nil {
			return nil, err
		}
	}

	return container, nil
}

var core = []any{
	ProvideBaseAWSConfig,
	ProvideSTSClient,
	ProvideCredentialResolver,
	ProvideAWSConfig,
	ProvideSecretsManagerClient,
	ProvideSSMClient,
	ProvideElasticBeanstalkClient,
	ProvideSecretFetcher,
	services.NewEnvironmentUpdater,
	ProvideWorkflow,
	services.NewSecretsManagerService,
	services.NewParameterStoreService,
}
