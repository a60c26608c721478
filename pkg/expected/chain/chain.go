package chain

import (
	"context"

	"github.com/bstamour/std-expected/pkg/expected"
	"github.com/bstamour/std-expected/pkg/expected/solo"
)

// Chain carries an expected.Expected and the context handed to every step.
type Chain[T, E any] struct {
	ctx    context.Context
	result expected.Expected[T, E]
}

// Start begins a chain at result.
func Start[T, E any](ctx context.Context, result expected.Expected[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue begins a chain at a success holding value.
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, expected.Success[T, E](value))
}

// Result returns the container the chain has reached.
func (c *Chain[T, E]) Result() expected.Expected[T, E] {
	return c.result
}

// Then runs onSuccess on the success value; a failure passes through untouched.
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) expected.Expected[U, E]) *Chain[U, E] {
	return Start(c.ctx, solo.Then(c.ctx, c.result, onSuccess))
}

// Map replaces the success value with onSuccess's result. The error type is kept.
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// OrElse gives onError a chance to recover from a failure.
func (c *Chain[T, E]) OrElse(onError func(context.Context, E) expected.Expected[T, E]) *Chain[T, E] {
	return Start(c.ctx, solo.OrElse(c.ctx, c.result, onError))
}

// Ensure calls onSuccess for a success and returns the same container.
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result, onSuccess))
}

// Finally reduces the chain to a single value: onSuccess for a success,
// onError with the error payload for a failure.
func Finally[T, E, Out any](c *Chain[T, E], onSuccess func(context.Context, T) Out, onError func(context.Context, E) Out) Out {
	return solo.Finally(c.ctx, c.result, onSuccess, onError)
}
