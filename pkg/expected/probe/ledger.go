package probe

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInjected is returned by an operation the Ledger was told to fail.
var ErrInjected = errors.New("probe: injected failure")

type Ledger struct {
	mu  sync.Mutex
	log *zap.Logger

	live           map[uuid.UUID]int
	builds         int
	releases       int
	doubleReleases int

	failClone int
	failMove  int
	failBuild int
}

type Option func(*Ledger)

func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		log:  zap.NewNop(),
		live: make(map[uuid.UUID]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FailNextClone makes the next TryClone on a payload of this ledger fail.
func (l *Ledger) FailNextClone() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failClone++
}

// FailNextMove makes the next TryMove on a Fragile of this ledger fail.
func (l *Ledger) FailNextMove() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failMove++
}

// FailNextBuild makes the next builder returned by BuildSturdy or
// BuildFragile fail.
func (l *Ledger) FailNextBuild() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failBuild++
}

// Live returns the number of built and not yet released payloads.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

func (l *Ledger) IsLive(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.live[id]
	return ok
}

func (l *Ledger) Builds() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.builds
}

func (l *Ledger) Releases() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releases
}

func (l *Ledger) DoubleReleases() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doubleReleases
}

func (l *Ledger) register(op string, value int) uuid.UUID {
	id := uuid.New()

	l.mu.Lock()
	l.live[id] = value
	l.builds++
	l.mu.Unlock()

	l.log.Debug("payload built", zap.String("op", op), zap.Stringer("id", id), zap.Int("value", value))
	return id
}

func (l *Ledger) unregister(id uuid.UUID) {
	l.mu.Lock()
	_, ok := l.live[id]
	if ok {
		delete(l.live, id)
		l.releases++
	} else {
		l.doubleReleases++
	}
	l.mu.Unlock()

	if !ok {
		l.log.Warn("payload released twice", zap.Stringer("id", id))
		return
	}
	l.log.Debug("payload released", zap.Stringer("id", id))
}

// consume reports whether an injected failure is pending on counter and
// uses it up.
func (l *Ledger) consume(op string, counter *int) bool {
	l.mu.Lock()
	pending := *counter > 0
	if pending {
		*counter--
	}
	l.mu.Unlock()

	if pending {
		l.log.Debug("injected failure", zap.String("op", op))
	}
	return pending
}
