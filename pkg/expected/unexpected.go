package expected

// Unexpected carries an error payload into the failure-building operations
// of Expected and Void.
type Unexpected[E any] struct {
	val E
}

// MakeUnexpected wraps e.
func MakeUnexpected[E any](e E) Unexpected[E] {
	return Unexpected[E]{val: e}
}

// UnexpectedWith builds the wrapped error in place. If build fails no
// wrapper is produced.
func UnexpectedWith[E any](build func() (E, error)) (Unexpected[E], error) {
	e, err := build()
	if err != nil {
		return Unexpected[E]{}, err
	}
	return Unexpected[E]{val: e}, nil
}

// Value returns the wrapped error.
func (u Unexpected[E]) Value() E {
	return u.val
}

// Ptr returns a pointer to the wrapped error.
func (u *Unexpected[E]) Ptr() *E {
	return &u.val
}

// Take moves the wrapped error out. u stays usable in a moved-from state.
func (u *Unexpected[E]) Take() (E, error) {
	return moveOf(&u.val)
}

// Swap exchanges the wrapped errors of u and other.
func (u *Unexpected[E]) Swap(other *Unexpected[E]) {
	u.val, other.val = other.val, u.val
}

func SwapUnexpected[E any](a, b *Unexpected[E]) {
	a.Swap(b)
}

// UnexpectedEqual reports whether a and b wrap equal errors.
func UnexpectedEqual[E comparable](a, b Unexpected[E]) bool {
	return a.val == b.val
}

func UnexpectedEqualFunc[E, G any](a Unexpected[E], b Unexpected[G], eq func(E, G) bool) bool {
	return eq(a.val, b.val)
}
