package di

import "context"

// Option is a function that configures the dependency injection container.
type Option func(*options)

// WithContext sets the context handed to providers that make remote calls.
// The logger attached to it is the one providers log through.
func WithContext(ctx context.Context) Option {
	return func(opts *options) {
		opts.ctx = ctx
	}
}

// WithDecorators replaces or wraps values of the core graph. Each decorator
// returns a type the container already provides, typically an SDK client
// interface.
//
// Example:
//
//	WithDecorators(
//	    func() services.STSClient { return fakeSTS },
//	)
func WithDecorators(decorators ...any) Option {
	return func(opts *options) {
		opts.decorators = append(opts.decorators, decorators...)
	}
}

type options struct {
	ctx        context.Context
	decorators []any
}
