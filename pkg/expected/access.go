package expected

const badAccessMessage = "bad expected access"

// BadAccess is the untyped fault reported when a success-only accessor is
// used on a container holding an error.
type BadAccess struct{}

func (BadAccess) Error() string {
	return badAccessMessage
}

// ErrBadAccess matches every access fault with errors.Is.
var ErrBadAccess error = BadAccess{}

// BadAccessOf is the fault returned by checked accessors. It owns a copy of
// the error that was live when the access was attempted.
type BadAccessOf[E any] struct {
	err E
}

func NewBadAccess[E any](e E) *BadAccessOf[E] {
	return &BadAccessOf[E]{err: e}
}

func (f *BadAccessOf[E]) Error() string {
	return badAccessMessage
}

// Unwrap exposes the untyped fault so that callers who do not know E can
// still match it.
func (f *BadAccessOf[E]) Unwrap() error {
	return BadAccess{}
}

func (f *BadAccessOf[E]) Err() E {
	return f.err
}

func (f *BadAccessOf[E]) ErrPtr() *E {
	return &f.err
}

// TakeErr moves the stored error out of the fault.
func (f *BadAccessOf[E]) TakeErr() (E, error) {
	return moveOf(&f.err)
}

// badAccess builds the fault from a copy of the live error at p.
func badAccess[E any](p *E) error {
	e, err := copyOf(p)
	if err != nil {
		return err
	}
	return NewBadAccess(e)
}
