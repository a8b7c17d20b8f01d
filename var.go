// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package envlock

import "os"

// Var is one requested environment mutation: set Name to a string value, or
// remove Name from the environment entirely.  Use Set and Unset to construct
// instances.
type Var struct {
	// Name is the environment variable name.
	Name string

	// Value is the desired value.  A nil Value means the variable is removed
	// from the environment, which is distinct from setting it to the empty
	// string.
	Value *string
}

// Set returns a Var that sets name to value while the lock is held.
func Set(name, value string) Var {
	return Var{Name: name, Value: &value}
}

// Unset returns a Var that removes name from the environment while the lock
// is held.
func Unset(name string) Var {
	return Var{Name: name}
}

// apply writes this variable to the process environment.
func (v Var) apply() {
	if v.Value != nil {
		os.Setenv(v.Name, *v.Value)
	} else {
		os.Unsetenv(v.Name)
	}
}

// dedupe collapses duplicate names so that each variable is snapshotted
// exactly once.  The first occurrence keeps its position, which preserves the
// true pre-lock state in the snapshot, and the value from the last occurrence
// wins.
func dedupe(vars []Var) []Var {
	var (
		index = make(map[string]int, len(vars))
		out   = make([]Var, 0, len(vars))
	)

	for _, v := range vars {
		if i, ok := index[v.Name]; ok {
			out[i].Value = v.Value
			continue
		}

		index[v.Name] = len(out)
		out = append(out, v)
	}

	return out
}

// names lists the variable names in vars, primarily for logging.
func names(vars []Var) []string {
	n := make([]string, len(vars))
	for i, v := range vars {
		n[i] = v.Name
	}

	return n
}
