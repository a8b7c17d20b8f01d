// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package envlock

import (
	"os"
	"strings"
)

// Environ returns the current process environment as a map.  It is a
// convenience for asserting on whole-environment state around a critical
// section.  Environ takes no lock itself; callers who need a consistent view
// should hold a Guard while calling it.
func Environ() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}

		env[name] = value
	}

	return env
}
