package envlock

import (
	"context"

	"github.com/go-kit/kit/metrics/discard"

	"github.com/xmidt-org/envlock/clock"
)

// InstrumentOption represents a configurable option for instrumenting a locker
type InstrumentOption func(*instrumentedLocker)

// WithAcquisitions establishes a metric that counts successful acquisitions
// of the environment lock.  If a nil counter is supplied, counts are
// discarded.
func WithAcquisitions(a Adder) InstrumentOption {
	return func(il *instrumentedLocker) {
		if a != nil {
			il.acquisitions = a
		} else {
			il.acquisitions = discard.NewCounter()
		}
	}
}

// WithFailures establishes a metric that counts failed acquisition attempts:
// TryLock misses and LockCtx cancellations.  If a nil counter is supplied,
// counts are discarded.
func WithFailures(a Adder) InstrumentOption {
	return func(il *instrumentedLocker) {
		if a != nil {
			il.failures = a
		} else {
			il.failures = discard.NewCounter()
		}
	}
}

// WithHeld establishes a gauge that is 1 while the environment lock is held
// through this locker and 0 otherwise.  If a nil gauge is supplied, updates
// are discarded.
func WithHeld(s Setter) InstrumentOption {
	return func(il *instrumentedLocker) {
		if s != nil {
			il.held = s
		} else {
			il.held = discard.NewGauge()
		}
	}
}

// WithHoldDuration establishes a metric that observes, in seconds, how long
// each Guard was held before it was restored.  If a nil observer is
// supplied, observations are discarded.
func WithHoldDuration(o Observer) InstrumentOption {
	return func(il *instrumentedLocker) {
		if o != nil {
			il.holdDuration = o
		} else {
			il.holdDuration = discard.NewHistogram()
		}
	}
}

// WithClock establishes the time source used to measure hold durations.  If
// a nil clock is supplied, the system clock is used.
func WithClock(c clock.Interface) InstrumentOption {
	return func(il *instrumentedLocker) {
		if c != nil {
			il.clock = c
		} else {
			il.clock = clock.System()
		}
	}
}

// Instrument decorates an existing locker with a set of options.  By
// default, all metrics are discarded and the system clock is used.
func Instrument(next Interface, o ...InstrumentOption) Interface {
	il := &instrumentedLocker{
		next:         next,
		acquisitions: discard.NewCounter(),
		failures:     discard.NewCounter(),
		held:         discard.NewGauge(),
		holdDuration: discard.NewHistogram(),
		clock:        clock.System(),
	}

	for _, f := range o {
		f(il)
	}

	return il
}

type instrumentedLocker struct {
	next         Interface
	acquisitions Adder
	failures     Adder
	held         Setter
	holdDuration Observer
	clock        clock.Interface
}

// acquired records a successful acquisition and hooks the guard's release so
// that the held gauge and hold duration are updated when it is restored.
func (il *instrumentedLocker) acquired(g *Guard) *Guard {
	var (
		start = il.clock.Now()
		next  = g.released
	)

	il.acquisitions.Add(1.0)
	il.held.Set(1.0)

	g.released = func() {
		il.held.Set(0.0)
		il.holdDuration.Observe(il.clock.Now().Sub(start).Seconds())

		if next != nil {
			next()
		}
	}

	return g
}

func (il *instrumentedLocker) Lock(vars ...Var) *Guard {
	return il.acquired(il.next.Lock(vars...))
}

func (il *instrumentedLocker) LockCtx(ctx context.Context, vars ...Var) (*Guard, error) {
	g, err := il.next.LockCtx(ctx, vars...)
	if err != nil {
		il.failures.Add(1.0)
		return nil, err
	}

	return il.acquired(g), nil
}

func (il *instrumentedLocker) TryLock(vars ...Var) (*Guard, bool) {
	g, ok := il.next.TryLock(vars...)
	if !ok {
		il.failures.Add(1.0)
		return nil, false
	}

	return il.acquired(g), true
}
