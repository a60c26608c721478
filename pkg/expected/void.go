package expected

import "fmt"

// Void is Expected for operations that carry no success value: success is
// the discriminant alone and only the error slot holds a payload. The zero
// value is a success.
type Void[E any] struct {
	err    E
	failed bool
}

func NewVoid[E any]() Void[E] {
	return Void[E]{}
}

func VoidFailure[E any](u Unexpected[E]) Void[E] {
	return Void[E]{err: u.val, failed: true}
}

func VoidFailureWith[E any](build func() (E, error)) (Void[E], error) {
	e, err := build()
	if err != nil {
		return Void[E]{}, err
	}
	return Void[E]{err: e, failed: true}, nil
}

func CopyVoid[E any](src *Void[E]) (Void[E], error) {
	if !src.failed {
		return Void[E]{}, nil
	}
	e, err := copyOf(&src.err)
	if err != nil {
		return Void[E]{}, err
	}
	return Void[E]{err: e, failed: true}, nil
}

func MoveVoid[E any](src *Void[E]) (Void[E], error) {
	if !src.failed {
		return Void[E]{}, nil
	}
	e, err := moveOf(&src.err)
	if err != nil {
		return Void[E]{}, err
	}
	return Void[E]{err: e, failed: true}, nil
}

// ConvertVoid builds a Void[E] from a copy of src's error, if any.
func ConvertVoid[E, G any](src *Void[G], convertErr func(G) (E, error)) (Void[E], error) {
	if !src.failed {
		return Void[E]{}, nil
	}
	g, err := copyOf(&src.err)
	if err != nil {
		return Void[E]{}, err
	}
	return VoidFailureWith(func() (E, error) { return convertErr(g) })
}

func (v *Void[E]) Release() {
	if v.failed {
		release(&v.err)
	}
}

func (v *Void[E]) HasValue() bool {
	return !v.failed
}

// Value returns nil on success and a *BadAccessOf[E] otherwise.
func (v *Void[E]) Value() error {
	if v.failed {
		return badAccess(&v.err)
	}
	return nil
}

func (v *Void[E]) MustValue() {
	if err := v.Value(); err != nil {
		panic(err)
	}
}

func (v *Void[E]) Err() E {
	return v.err
}

func (v *Void[E]) ErrPtr() *E {
	return &v.err
}

func (v *Void[E]) TakeErr() (E, error) {
	return moveOf(&v.err)
}

// Assign makes v hold a copy of rhs's state.
func (v *Void[E]) Assign(rhs *Void[E]) error {
	return v.assign(rhs, copyOf[E])
}

// AssignMove makes v hold rhs's state, moving the error out of rhs.
func (v *Void[E]) AssignMove(rhs *Void[E]) error {
	return v.assign(rhs, moveOf[E])
}

func (v *Void[E]) assign(rhs *Void[E], build func(*E) (E, error)) error {
	switch {
	case !rhs.failed:
		if v.failed {
			release(&v.err)
			v.failed = false
		}
		return nil
	case v.failed:
		return replace(&v.err, func() (E, error) { return build(&rhs.err) })
	}

	return v.AssignErrorWith(func() (E, error) { return build(&rhs.err) })
}

func (v *Void[E]) AssignUnexpected(u Unexpected[E]) {
	if v.failed {
		release(&v.err)
	}
	v.err = u.val
	v.failed = true
}

// AssignErrorWith makes v a failure holding the error produced by build. If
// build fails v keeps its previous state.
func (v *Void[E]) AssignErrorWith(build func() (E, error)) error {
	if v.failed {
		return replace(&v.err, build)
	}
	e, err := build()
	if err != nil {
		return err
	}
	v.err = e
	v.failed = true
	return nil
}

// Emplace discards any live error and makes v a success.
func (v *Void[E]) Emplace() {
	if v.failed {
		release(&v.err)
		v.failed = false
	}
}

// Swap exchanges the states of v and other. If moving an error fails both
// keep their original states.
func (v *Void[E]) Swap(other *Void[E]) error {
	switch {
	case !v.failed && !other.failed:
	case v.failed && other.failed:
		v.err, other.err = other.err, v.err
	case v.failed:
		return other.Swap(v)
	default:
		e, err := relocate(&other.err)
		if err != nil {
			return err
		}
		v.err = e
		v.failed, other.failed = true, false
	}
	return nil
}

func SwapVoid[E any](a, b *Void[E]) error {
	return a.Swap(b)
}

func (v *Void[E]) String() string {
	if v.failed {
		return fmt.Sprintf("Failure(%v)", v.err)
	}
	return "Success()"
}
