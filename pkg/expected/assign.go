package expected

import "errors"

var (
	// ErrNotAssignable is returned when a transition between payloads could
	// leave the container empty: both payload moves may fail and so may the
	// build of the incoming payload.
	ErrNotAssignable = errors.New("expected: assignment needs a payload that moves without failing")
	ErrNotSwappable  = errors.New("expected: swap needs a payload that moves without failing")
)

// Assignable reports whether Assign, AssignMove and Swap are offered for
// Expected[T, E].
func Assignable[T, E any]() bool {
	return !traitsOf[T]().moveMayFail() || !traitsOf[E]().moveMayFail()
}

// reinit makes next the live slot in place of old. build produces the
// incoming payload; buildMayFail selects the cheapest path that keeps a
// payload live if build fails.
func reinit[N, O any](next *N, old *O, build func() (N, error), buildMayFail bool) error {
	switch {
	case !buildMayFail:
		v, err := build()
		if err != nil {
			return err
		}
		release(old)
		*next = v
		return nil

	case !traitsOf[N]().moveMayFail():
		tmp, err := build()
		if err != nil {
			return err
		}
		release(old)
		*next = place(&tmp)
		return nil

	case !traitsOf[O]().moveMayFail():
		rescue := place(old)
		v, err := build()
		if err != nil {
			*old = place(&rescue)
			return err
		}
		release(&rescue)
		*next = v
		return nil
	}
	return ErrNotAssignable
}

// replace rebuilds the live payload in slot. On failure slot is untouched.
func replace[T any](slot *T, build func() (T, error)) error {
	v, err := build()
	if err != nil {
		return err
	}
	release(slot)
	*slot = v
	return nil
}

// Assign makes e hold a copy of rhs's state. If copying the payload fails
// e keeps its previous state and the failure is returned.
func (e *Expected[T, E]) Assign(rhs *Expected[T, E]) error {
	if !Assignable[T, E]() {
		return ErrNotAssignable
	}

	var err error
	switch {
	case !e.failed && !rhs.failed:
		return replace(&e.val, func() (T, error) { return copyOf(&rhs.val) })
	case e.failed && rhs.failed:
		return replace(&e.err, func() (E, error) { return copyOf(&rhs.err) })
	case !e.failed:
		err = reinit(&e.err, &e.val, func() (E, error) { return copyOf(&rhs.err) },
			traitsOf[E]().copyMayFail())
	default:
		err = reinit(&e.val, &e.err, func() (T, error) { return copyOf(&rhs.val) },
			traitsOf[T]().copyMayFail())
	}
	if err != nil {
		return err
	}

	e.failed = rhs.failed
	return nil
}

// AssignMove is Assign moving rhs's payload instead of copying it. rhs stays
// live in a moved-from state.
func (e *Expected[T, E]) AssignMove(rhs *Expected[T, E]) error {
	if !Assignable[T, E]() {
		return ErrNotAssignable
	}

	var err error
	switch {
	case !e.failed && !rhs.failed:
		return replace(&e.val, func() (T, error) { return moveOf(&rhs.val) })
	case e.failed && rhs.failed:
		return replace(&e.err, func() (E, error) { return moveOf(&rhs.err) })
	case !e.failed:
		err = reinit(&e.err, &e.val, func() (E, error) { return moveOf(&rhs.err) },
			traitsOf[E]().moveMayFail())
	default:
		err = reinit(&e.val, &e.err, func() (T, error) { return moveOf(&rhs.val) },
			traitsOf[T]().moveMayFail())
	}
	if err != nil {
		return err
	}

	e.failed = rhs.failed
	return nil
}

// AssignValue makes e a success holding v.
func (e *Expected[T, E]) AssignValue(v T) {
	if e.failed {
		release(&e.err)
		e.failed = false
	} else {
		release(&e.val)
	}
	e.val = v
}

// AssignUnexpected makes e a failure holding the error wrapped by u.
func (e *Expected[T, E]) AssignUnexpected(u Unexpected[E]) {
	if e.failed {
		release(&e.err)
	} else {
		release(&e.val)
		e.failed = true
	}
	e.err = u.val
}

// AssignWith makes e a success holding the value produced by build. If
// build fails e keeps its previous state.
func (e *Expected[T, E]) AssignWith(build func() (T, error)) error {
	if !e.failed {
		return replace(&e.val, build)
	}
	if err := reinit(&e.val, &e.err, build, true); err != nil {
		return err
	}
	e.failed = false
	return nil
}

// AssignErrorWith makes e a failure holding the error produced by build.
// If build fails e keeps its previous state.
func (e *Expected[T, E]) AssignErrorWith(build func() (E, error)) error {
	if e.failed {
		return replace(&e.err, build)
	}
	if err := reinit(&e.err, &e.val, build, true); err != nil {
		return err
	}
	e.failed = true
	return nil
}

// Emplace destroys whatever e holds and stores v as the success value.
func (e *Expected[T, E]) Emplace(v T) *T {
	e.AssignValue(v)
	return &e.val
}
