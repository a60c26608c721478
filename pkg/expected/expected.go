package expected

import "fmt"

// Expected holds either a success value of type T or an error payload of
// type E. The zero value is a success holding T's zero value.
//
// Expected is not safe for concurrent use.
type Expected[T, E any] struct {
	val    T
	err    E
	failed bool
}

// New returns a success holding T's zero value.
func New[T, E any]() Expected[T, E] {
	return Expected[T, E]{}
}

// Success returns a success holding v.
func Success[T, E any](v T) Expected[T, E] {
	return Expected[T, E]{val: v}
}

// Failure returns a failure holding the error wrapped by u.
func Failure[T, E any](u Unexpected[E]) Expected[T, E] {
	return Expected[T, E]{err: u.val, failed: true}
}

// SuccessWith builds the success value in place.
func SuccessWith[T, E any](build func() (T, error)) (Expected[T, E], error) {
	v, err := build()
	if err != nil {
		return Expected[T, E]{}, err
	}
	return Expected[T, E]{val: v}, nil
}

// FailureWith builds the error payload in place.
func FailureWith[T, E any](build func() (E, error)) (Expected[T, E], error) {
	e, err := build()
	if err != nil {
		return Expected[T, E]{}, err
	}
	return Expected[T, E]{err: e, failed: true}, nil
}

// Copy returns a container holding a copy of src's live payload.
func Copy[T, E any](src *Expected[T, E]) (Expected[T, E], error) {
	if src.failed {
		e, err := copyOf(&src.err)
		if err != nil {
			return Expected[T, E]{}, err
		}
		return Expected[T, E]{err: e, failed: true}, nil
	}

	v, err := copyOf(&src.val)
	if err != nil {
		return Expected[T, E]{}, err
	}
	return Expected[T, E]{val: v}, nil
}

// Move returns a container holding src's live payload. src keeps its
// discriminant and stays live in a moved-from state.
func Move[T, E any](src *Expected[T, E]) (Expected[T, E], error) {
	if src.failed {
		e, err := moveOf(&src.err)
		if err != nil {
			return Expected[T, E]{}, err
		}
		return Expected[T, E]{err: e, failed: true}, nil
	}

	v, err := moveOf(&src.val)
	if err != nil {
		return Expected[T, E]{}, err
	}
	return Expected[T, E]{val: v}, nil
}

// Convert builds an Expected[T, E] from a copy of src's live payload. The
// converters own the copy they are handed.
func Convert[T, E, U, G any](src *Expected[U, G],
	convertValue func(U) (T, error),
	convertErr func(G) (E, error)) (Expected[T, E], error) {

	if src.failed {
		g, err := copyOf(&src.err)
		if err != nil {
			return Expected[T, E]{}, err
		}
		return FailureWith[T, E](func() (E, error) { return convertErr(g) })
	}

	u, err := copyOf(&src.val)
	if err != nil {
		return Expected[T, E]{}, err
	}
	return SuccessWith[T, E](func() (T, error) { return convertValue(u) })
}

// ConvertMove is Convert moving the payload out of src instead of copying it.
func ConvertMove[T, E, U, G any](src *Expected[U, G],
	convertValue func(U) (T, error),
	convertErr func(G) (E, error)) (Expected[T, E], error) {

	if src.failed {
		g, err := moveOf(&src.err)
		if err != nil {
			return Expected[T, E]{}, err
		}
		return FailureWith[T, E](func() (E, error) { return convertErr(g) })
	}

	u, err := moveOf(&src.val)
	if err != nil {
		return Expected[T, E]{}, err
	}
	return SuccessWith[T, E](func() (T, error) { return convertValue(u) })
}

// Release destroys the live payload. The container must not be used
// afterwards.
func (e *Expected[T, E]) Release() {
	if e.failed {
		release(&e.err)
		return
	}
	release(&e.val)
}

func (e *Expected[T, E]) HasValue() bool {
	return !e.failed
}

// Deref returns the success value without checking the discriminant.
func (e *Expected[T, E]) Deref() T {
	return e.val
}

// Ptr returns a pointer to the success slot without checking the
// discriminant.
func (e *Expected[T, E]) Ptr() *T {
	return &e.val
}

// Value returns the success value, or a *BadAccessOf[E] holding a copy of
// the live error.
func (e *Expected[T, E]) Value() (T, error) {
	if e.failed {
		var zero T
		return zero, badAccess(&e.err)
	}
	return e.val, nil
}

// ValuePtr is the checked counterpart of Ptr.
func (e *Expected[T, E]) ValuePtr() (*T, error) {
	if e.failed {
		return nil, badAccess(&e.err)
	}
	return &e.val, nil
}

// TakeValue moves the success value out, leaving e live in a moved-from
// state.
func (e *Expected[T, E]) TakeValue() (T, error) {
	if e.failed {
		var zero T
		return zero, badAccess(&e.err)
	}
	return moveOf(&e.val)
}

// MustValue returns the success value and panics with the access fault
// otherwise.
func (e *Expected[T, E]) MustValue() T {
	v, err := e.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns the error payload without checking the discriminant.
func (e *Expected[T, E]) Err() E {
	return e.err
}

func (e *Expected[T, E]) ErrPtr() *E {
	return &e.err
}

// TakeErr moves the error payload out without checking the discriminant.
func (e *Expected[T, E]) TakeErr() (E, error) {
	return moveOf(&e.err)
}

// ValueOr returns a copy of the success value, or def when e holds an
// error. A failed copy is returned as is.
func (e *Expected[T, E]) ValueOr(def T) (T, error) {
	if e.failed {
		return def, nil
	}
	return copyOf(&e.val)
}

func (e *Expected[T, E]) String() string {
	if e.failed {
		return fmt.Sprintf("Failure(%v)", e.err)
	}
	return fmt.Sprintf("Success(%v)", e.val)
}
