package expected

// Swap exchanges the states of e and other. If a payload move fails both
// containers keep their original states and the failure is returned.
func (e *Expected[T, E]) Swap(other *Expected[T, E]) error {
	if !Assignable[T, E]() {
		return ErrNotSwappable
	}

	switch {
	case !e.failed && !other.failed:
		e.val, other.val = other.val, e.val
	case e.failed && other.failed:
		e.err, other.err = other.err, e.err
	case e.failed:
		return other.Swap(e)
	default:
		return e.swapMixed(other)
	}
	return nil
}

// swapMixed exchanges a success e with a failure other. The payload whose
// move cannot fail is parked in a temporary first so it can be put back.
func (e *Expected[T, E]) swapMixed(other *Expected[T, E]) error {
	if !traitsOf[E]().moveMayFail() {
		tmp := place(&other.err)
		v, err := relocate(&e.val)
		if err != nil {
			other.err = place(&tmp)
			return err
		}
		other.val = v
		e.err = place(&tmp)
	} else {
		tmp := place(&e.val)
		g, err := relocate(&other.err)
		if err != nil {
			e.val = place(&tmp)
			return err
		}
		e.err = g
		other.val = place(&tmp)
	}

	e.failed, other.failed = true, false
	return nil
}

func Swap[T, E any](a, b *Expected[T, E]) error {
	return a.Swap(b)
}
