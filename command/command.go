// Package command wraps asynchronous actions with execution tracking.
//
// A command owns a single action producing a result.Result and exposes the
// derived state around its execution: whether a run is in flight, and how
// the last run settled. Subscribers registered on the command are notified
// synchronously on every transition: once when an execution enters the
// running state and once when it settles. A presentation layer can
// render loading, error and completion states by re-reading the command
// after each notification.
//
// A command never runs the same action twice concurrently: Execute is a
// no-op while a previous execution is still in flight. The action's outcome
// is the command's only error channel; panics inside the action are
// recovered and settle the execution with a failure.
package command

import (
	"context"

	"github.com/rise-and-shine/reactive/result"
)

// Action is an asynchronous operation taking no arguments.
type Action[T any] func(ctx context.Context) result.Result[T]

// ActionWith is an asynchronous operation taking one argument.
type ActionWith[T, A any] func(ctx context.Context, arg A) result.Result[T]

// Command executes a no-argument action. It is reusable indefinitely: after
// a run settles, Execute starts the next one.
type Command[T any] struct {
	*engine[T]
	action Action[T]
}

// New creates a Command around action.
func New[T any](action Action[T], opts ...Option) (*Command[T], error) {
	if action == nil {
		return nil, ErrNilAction
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Command[T]{
		engine: newEngine[T](options),
		action: action,
	}, nil
}

// Execute runs the action once, blocking until it settles. When an
// execution is already in flight the call returns immediately without
// invoking the action or notifying subscribers.
func (c *Command[T]) Execute(ctx context.Context) {
	c.engine.execute(ctx, func(ctx context.Context) result.Result[T] {
		return c.action(ctx)
	})
}

// CommandWith executes a one-argument action. The execution and
// notification machinery is identical to Command; only the argument
// forwarding differs.
type CommandWith[T, A any] struct {
	*engine[T]
	action ActionWith[T, A]
}

// NewWith creates a CommandWith around action.
func NewWith[T, A any](action ActionWith[T, A], opts ...Option) (*CommandWith[T, A], error) {
	if action == nil {
		return nil, ErrNilAction
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &CommandWith[T, A]{
		engine: newEngine[T](options),
		action: action,
	}, nil
}

// Execute runs the action once with arg, blocking until it settles. When an
// execution is already in flight the call returns immediately without
// invoking the action or notifying subscribers.
func (c *CommandWith[T, A]) Execute(ctx context.Context, arg A) {
	c.engine.execute(ctx, func(ctx context.Context) result.Result[T] {
		return c.action(ctx, arg)
	})
}
