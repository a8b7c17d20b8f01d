// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package envlock

import (
	"sync"

	"go.uber.org/zap"
)

// Guard represents a held environment lock together with the snapshot taken
// when it was acquired.  A Guard must not be copied.  Typical usage defers
// Restore immediately:
//
//	g := envlock.Lock(envlock.Set("SOME_VAR", "value"))
//	defer g.Restore()
//
// Deferred calls run during a panic, so the deferred Restore puts the
// environment back and releases the lock even when the critical section
// terminates abnormally.
type Guard struct {
	previous []Var
	logger   *zap.Logger
	released func()
	once     sync.Once
}

// Restore puts every variable this Guard touched back to its value at lock
// time, unsetting any that did not exist, and then releases the environment
// lock.  The snapshot is always replayed before the lock is released, so no
// other goroutine can observe the environment mid-restore.  Only the first
// call has any effect.
func (g *Guard) Restore() {
	g.once.Do(func() {
		for _, v := range g.previous {
			v.apply()
		}

		g.logger.Debug("environment restored", zap.Strings("names", names(g.previous)))
		<-token

		if g.released != nil {
			g.released()
		}
	})
}
