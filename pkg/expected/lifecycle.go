package expected

import (
	"reflect"
	"sync"
)

// Cloner is implemented by payloads whose copy must do more than a plain
// assignment. Clone never fails.
type Cloner[T any] interface {
	Clone() T
}

// TryCloner is implemented by payloads whose copy may fail.
type TryCloner[T any] interface {
	TryClone() (T, error)
}

// Mover is implemented by payloads that hand their resources over on a move.
// The receiver stays live in a moved-from state and is released later.
type Mover[T any] interface {
	Move() T
}

// TryMover is implemented by payloads whose move may fail. A failed move
// leaves the receiver untouched.
type TryMover[T any] interface {
	TryMove() (T, error)
}

// Releaser is implemented by payloads that own resources which must be
// torn down when the payload stops being live.
type Releaser interface {
	Release()
}

type capability uint8

const (
	plain capability = iota
	infallible
	fallible
)

type traits struct {
	copy    capability
	move    capability
	release bool
}

func (t traits) copyMayFail() bool {
	return t.copy == fallible
}

func (t traits) moveMayFail() bool {
	return t.move == fallible
}

var traitCache sync.Map // reflect.Type -> traits

// traitsOf resolves the lifecycle capabilities of T once and caches them.
func traitsOf[T any]() traits {
	typ := reflect.TypeFor[T]()
	if t, ok := traitCache.Load(typ); ok {
		return t.(traits)
	}

	ptr := reflect.PointerTo(typ)
	implements := func(iface reflect.Type) bool {
		return ptr.Implements(iface) || typ.Implements(iface)
	}

	var t traits
	switch {
	case implements(reflect.TypeFor[TryCloner[T]]()):
		t.copy = fallible
	case implements(reflect.TypeFor[Cloner[T]]()):
		t.copy = infallible
	}
	switch {
	case implements(reflect.TypeFor[TryMover[T]]()):
		t.move = fallible
	case implements(reflect.TypeFor[Mover[T]]()):
		t.move = infallible
	}
	t.release = implements(reflect.TypeFor[Releaser]())

	traitCache.Store(typ, t)
	return t
}

// as returns the I view of the payload at p. ok is false for a nil
// interface payload, which is then handled as a plain value.
func as[I, T any](p *T) (I, bool) {
	if i, ok := any(p).(I); ok {
		return i, true
	}
	i, ok := any(*p).(I)
	return i, ok
}

// copyOf builds a copy of the payload at p. p stays live.
func copyOf[T any](p *T) (T, error) {
	switch traitsOf[T]().copy {
	case fallible:
		if c, ok := as[TryCloner[T]](p); ok {
			return c.TryClone()
		}
	case infallible:
		if c, ok := as[Cloner[T]](p); ok {
			return c.Clone(), nil
		}
	}
	return *p, nil
}

// moveOf moves the payload out of p. p stays live in a moved-from state.
func moveOf[T any](p *T) (T, error) {
	switch traitsOf[T]().move {
	case fallible:
		if m, ok := as[TryMover[T]](p); ok {
			return m.TryMove()
		}
	case infallible:
		if m, ok := as[Mover[T]](p); ok {
			return m.Move(), nil
		}
	}
	return *p, nil
}

// release destroys the payload at p and clears the slot.
func release[T any](p *T) {
	if traitsOf[T]().release {
		if r, ok := as[Releaser](p); ok {
			r.Release()
		}
	}
	var zero T
	*p = zero
}

// relocate moves the payload out of p and destroys what is left behind.
// On failure p is untouched.
func relocate[T any](p *T) (T, error) {
	if traitsOf[T]().move == plain || any(*p) == nil {
		v := *p
		var zero T
		*p = zero
		return v, nil
	}

	v, err := moveOf(p)
	if err != nil {
		return v, err
	}
	release(p)
	return v, nil
}

// place relocates a payload whose move cannot fail.
func place[T any](p *T) T {
	v, err := relocate(p)
	if err != nil {
		panic("expected: infallible move failed: " + err.Error())
	}
	return v
}
