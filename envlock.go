// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package envlock

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// token is the process-wide lock over the entire environment.  Every locker
// created by New shares it, so at most one Guard can be outstanding at any
// instant no matter how many lockers exist.  Technically this could be broken
// out into one lock per variable, but that adds a ton of complexity for very
// little value.
var token = make(chan struct{}, 1)

// Interface represents the process-wide environment lock.  When any lock
// method succeeds, Restore must be called on the returned Guard in order to
// put the environment back and allow other goroutines to take the lock.
type Interface interface {
	// Lock blocks until the environment lock is available, then applies the
	// given variables and returns a Guard that undoes them.  There is no
	// timeout.  A goroutine that calls Lock while already holding a Guard
	// will deadlock itself.
	//
	// A panic in the critical section unwinds through the usual deferred
	// Restore, which restores the environment and releases the lock before
	// the unwind completes.  There is no poisoned state to recover from on
	// the next call.
	Lock(vars ...Var) *Guard

	// LockCtx attempts to take the environment lock before the given context
	// is canceled.  On success the variables are applied and the returned
	// error is nil.  Otherwise, the Guard is nil and ctx.Err() is returned.
	LockCtx(ctx context.Context, vars ...Var) (*Guard, error)

	// TryLock attempts to take the environment lock, returning a nil Guard
	// and false immediately if it is held elsewhere.
	TryLock(vars ...Var) (*Guard, bool)
}

// Option is a configuration option for a locker created via New
type Option func(*locker)

// WithLogger establishes a logger used to record lock and restore events at
// debug level.  Variable names are logged, never values.  If a nil logger is
// supplied, events are discarded.
func WithLogger(l *zap.Logger) Option {
	return func(lk *locker) {
		if l != nil {
			lk.logger = l
		} else {
			lk.logger = zap.NewNop()
		}
	}
}

// New constructs a view over the process-wide environment lock with zero or
// more options.  Lockers returned by separate calls to New still contend for
// the same underlying lock, preserving mutual exclusion across the whole
// process.
func New(options ...Option) Interface {
	lk := &locker{
		logger: zap.NewNop(),
	}

	for _, o := range options {
		o(lk)
	}

	return lk
}

// defaultLocker backs the package-level Lock, LockCtx, and TryLock.
var defaultLocker = New()

// Lock acquires the process-wide environment lock using a default locker.
// See Interface.Lock.
func Lock(vars ...Var) *Guard {
	return defaultLocker.Lock(vars...)
}

// LockCtx acquires the process-wide environment lock using a default locker,
// honoring context cancellation.  See Interface.LockCtx.
func LockCtx(ctx context.Context, vars ...Var) (*Guard, error) {
	return defaultLocker.LockCtx(ctx, vars...)
}

// TryLock attempts the process-wide environment lock using a default locker.
// See Interface.TryLock.
func TryLock(vars ...Var) (*Guard, bool) {
	return defaultLocker.TryLock(vars...)
}

// locker is the internal Interface implementation
type locker struct {
	logger *zap.Logger
}

func (lk *locker) Lock(vars ...Var) *Guard {
	token <- struct{}{}
	return lk.apply(vars)
}

func (lk *locker) LockCtx(ctx context.Context, vars ...Var) (*Guard, error) {
	select {
	case token <- struct{}{}:
		return lk.apply(vars), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (lk *locker) TryLock(vars ...Var) (*Guard, bool) {
	select {
	case token <- struct{}{}:
		return lk.apply(vars), true
	default:
		return nil, false
	}
}

// apply snapshots and then mutates each requested variable, in order.  The
// caller must hold the token.
func (lk *locker) apply(vars []Var) *Guard {
	vars = dedupe(vars)
	previous := make([]Var, 0, len(vars))

	for _, v := range vars {
		if value, ok := os.LookupEnv(v.Name); ok {
			previous = append(previous, Set(v.Name, value))
		} else {
			previous = append(previous, Unset(v.Name))
		}

		v.apply()
	}

	lk.logger.Debug("environment locked", zap.Strings("names", names(vars)))

	return &Guard{
		previous: previous,
		logger:   lk.logger,
	}
}
