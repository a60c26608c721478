package solo

import (
	"context"
	"errors"

	"github.com/bstamour/std-expected/pkg/expected"
)

func Succeed[T, E any](input T) expected.Expected[T, E] {
	return expected.Success[T, E](input)
}

func Fail[T, E any](err E) expected.Expected[T, E] {
	return expected.Failure[T](expected.MakeUnexpected(err))
}

func Then[T, U, E any](ctx context.Context,
	input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r T) expected.Expected[U, E]) expected.Expected[U, E] {

	if input.HasValue() {
		return onSuccess(ctx, input.Deref())
	}
	return Fail[U](input.Err())
}

func Map[T, U, E any](ctx context.Context,
	input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r T) U) expected.Expected[U, E] {

	if input.HasValue() {
		return Succeed[U, E](onSuccess(ctx, input.Deref()))
	}
	return Fail[U](input.Err())
}

func MapErr[T, E, G any](ctx context.Context,
	input expected.Expected[T, E],
	onError func(ctx context.Context, err E) G) expected.Expected[T, G] {

	if input.HasValue() {
		return Succeed[T, G](input.Deref())
	}
	return Fail[T](onError(ctx, input.Err()))
}

func OrElse[T, E, G any](ctx context.Context,
	input expected.Expected[T, E],
	onError func(ctx context.Context, err E) expected.Expected[T, G]) expected.Expected[T, G] {

	if input.HasValue() {
		return Succeed[T, G](input.Deref())
	}
	return onError(ctx, input.Err())
}

// Try calls onTryExecute with the success value and turns a returned error
// into a failure.
func Try[T, U any](ctx context.Context,
	input expected.Expected[T, error],
	onTryExecute func(ctx context.Context, r T) (U, error)) expected.Expected[U, error] {

	if !input.HasValue() {
		return Fail[U](input.Err())
	}

	out, err := onTryExecute(ctx, input.Deref())
	if err != nil {
		return Fail[U](err)
	}
	return Succeed[U, error](out)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) expected.Expected[T, error] {
	return AndValidate(ctx, Succeed[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input expected.Expected[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) expected.Expected[T, error] {

	if input.HasValue() {
		if isValid, errMsg := validate(ctx, input.Deref()); !isValid {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func FailOnError[T any](ctx context.Context, input expected.Expected[T, error],
	maybeErr func(ctx context.Context, in T) error) expected.Expected[T, error] {

	if input.HasValue() {
		if err := maybeErr(ctx, input.Deref()); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Tee[T, E any](ctx context.Context,
	input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r T)) expected.Expected[T, E] {

	if input.HasValue() {
		onSuccess(ctx, input.Deref())
	}
	return input
}

func DoubleTee[T, E any](ctx context.Context, input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) expected.Expected[T, E] {

	if input.HasValue() {
		onSuccess(ctx, input.Deref())
	} else {
		onError(ctx, input.Err())
	}
	return input
}

func Finally[T, E, Out any](ctx context.Context, input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r T) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.HasValue() {
		return onSuccess(ctx, input.Deref())
	}
	return onError(ctx, input.Err())
}

// Join runs producers in order and collects their values. The first failure
// stops the run and is returned.
func Join[T, E any](ctx context.Context,
	producers ...func(ctx context.Context) expected.Expected[T, E]) expected.Expected[[]T, E] {

	values := make([]T, 0, len(producers))
	for _, produce := range producers {
		r := produce(ctx)
		if !r.HasValue() {
			return Fail[[]T](r.Err())
		}
		values = append(values, r.Deref())
	}
	return Succeed[[]T, E](values)
}
