// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package envlock

import "testing"

// Setenv acquires the environment lock, applies the given variables, and
// registers the restore with tb.Cleanup.  The lock remains held for the rest
// of the test, including any parallel subtests, and is restored and released
// when the test finishes.  A nil tb results in a panic.
func Setenv(tb testing.TB, vars ...Var) {
	if tb == nil {
		panic("envlock: a non-nil testing.TB is required")
	}

	tb.Helper()
	g := Lock(vars...)
	tb.Cleanup(g.Restore)
}
