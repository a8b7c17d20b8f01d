// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package envlock serializes access to the process environment so that tests
which read or modify environment variables can safely run in parallel within
the same process.

Lock blocks until no other Guard is outstanding, applies the requested
variables, and returns a Guard.  Restoring the Guard puts every touched
variable back to its prior value or absence and then releases the lock.  A
single lock covers the entire environment, so two critical sections never
overlap even when they touch disjoint variables.  Keep critical sections
short to prevent slowdowns.
*/
package envlock
