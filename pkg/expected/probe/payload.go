package probe

import (
	"fmt"

	"github.com/google/uuid"
)

// Sturdy is a payload whose copy may fail and whose move never fails.
type Sturdy struct {
	ID    uuid.UUID
	Value int
	Moved bool

	ledger *Ledger
}

func (l *Ledger) NewSturdy(value int) Sturdy {
	return Sturdy{ID: l.register("new", value), Value: value, ledger: l}
}

// BuildSturdy returns a builder suitable for expected's *With operations.
func (l *Ledger) BuildSturdy(value int) func() (Sturdy, error) {
	return func() (Sturdy, error) {
		if l.consume("build", &l.failBuild) {
			return Sturdy{}, ErrInjected
		}
		return l.NewSturdy(value), nil
	}
}

func (s *Sturdy) TryClone() (Sturdy, error) {
	if s.ledger == nil {
		return *s, nil
	}
	if s.ledger.consume("clone", &s.ledger.failClone) {
		return Sturdy{}, ErrInjected
	}
	return Sturdy{ID: s.ledger.register("clone", s.Value), Value: s.Value, ledger: s.ledger}, nil
}

func (s *Sturdy) Move() Sturdy {
	if s.ledger == nil {
		return *s
	}
	out := Sturdy{ID: s.ledger.register("move", s.Value), Value: s.Value, ledger: s.ledger}
	s.Value, s.Moved = 0, true
	return out
}

func (s *Sturdy) Release() {
	if s.ledger != nil {
		s.ledger.unregister(s.ID)
	}
}

func (s Sturdy) String() string {
	return fmt.Sprintf("sturdy(%d)", s.Value)
}

// Fragile is a payload whose copy and move may both fail.
type Fragile struct {
	ID    uuid.UUID
	Value int
	Moved bool

	ledger *Ledger
}

func (l *Ledger) NewFragile(value int) Fragile {
	return Fragile{ID: l.register("new", value), Value: value, ledger: l}
}

func (l *Ledger) BuildFragile(value int) func() (Fragile, error) {
	return func() (Fragile, error) {
		if l.consume("build", &l.failBuild) {
			return Fragile{}, ErrInjected
		}
		return l.NewFragile(value), nil
	}
}

func (f *Fragile) TryClone() (Fragile, error) {
	if f.ledger == nil {
		return *f, nil
	}
	if f.ledger.consume("clone", &f.ledger.failClone) {
		return Fragile{}, ErrInjected
	}
	return Fragile{ID: f.ledger.register("clone", f.Value), Value: f.Value, ledger: f.ledger}, nil
}

func (f *Fragile) TryMove() (Fragile, error) {
	if f.ledger == nil {
		return *f, nil
	}
	if f.ledger.consume("move", &f.ledger.failMove) {
		return Fragile{}, ErrInjected
	}
	out := Fragile{ID: f.ledger.register("move", f.Value), Value: f.Value, ledger: f.ledger}
	f.Value, f.Moved = 0, true
	return out, nil
}

func (f *Fragile) Release() {
	if f.ledger != nil {
		f.ledger.unregister(f.ID)
	}
}

func (f Fragile) String() string {
	return fmt.Sprintf("fragile(%d)", f.Value)
}
