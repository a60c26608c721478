package expected

// Equal reports whether a and b have the same discriminant and equal live
// payloads.
func Equal[T, E comparable](a, b *Expected[T, E]) bool {
	return EqualFunc(a, b, eq[T], eq[E])
}

// EqualFunc is Equal with caller-supplied payload comparisons, allowing
// containers of different payload types to be compared.
func EqualFunc[T1, E1, T2, E2 any](a *Expected[T1, E1], b *Expected[T2, E2],
	eqValue func(T1, T2) bool, eqErr func(E1, E2) bool) bool {

	if a.failed != b.failed {
		return false
	}
	if a.failed {
		return eqErr(a.err, b.err)
	}
	return eqValue(a.val, b.val)
}

// EqualValue reports whether a is a success holding a value equal to v.
func EqualValue[T comparable, E any](a *Expected[T, E], v T) bool {
	return EqualValueFunc(a, v, eq[T])
}

func EqualValueFunc[T, E, U any](a *Expected[T, E], v U, eqValue func(T, U) bool) bool {
	return !a.failed && eqValue(a.val, v)
}

// EqualError reports whether a is a failure holding an error equal to the
// one wrapped by u.
func EqualError[T any, E comparable](a *Expected[T, E], u Unexpected[E]) bool {
	return EqualErrorFunc(a, u, eq[E])
}

func EqualErrorFunc[T, E, G any](a *Expected[T, E], u Unexpected[G], eqErr func(E, G) bool) bool {
	return a.failed && eqErr(a.err, u.val)
}

func VoidEqual[E comparable](a, b *Void[E]) bool {
	return VoidEqualFunc(a, b, eq[E])
}

func VoidEqualFunc[E1, E2 any](a *Void[E1], b *Void[E2], eqErr func(E1, E2) bool) bool {
	if a.failed != b.failed {
		return false
	}
	return !a.failed || eqErr(a.err, b.err)
}

func VoidEqualError[E comparable](a *Void[E], u Unexpected[E]) bool {
	return a.failed && a.err == u.val
}

func eq[T comparable](a, b T) bool {
	return a == b
}
