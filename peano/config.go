// Copyright © 2025 The Peano authors

package peano

import "io"

// Config is a function that configures a root environment or its runtime.
type Config func(env *PEnv) *PVal

// WithStderr returns a Config that directs runtime diagnostics to w.
func WithStderr(w io.Writer) Config {
	return func(env *PEnv) *PVal {
		env.Runtime.Stderr = w
		return Bool(true)
	}
}

// WithMaxDepth returns a Config that bounds application-dispatch depth at n.
// When the bound is exceeded evaluation fails with a recursion-limit error.
// n <= 0 disables the ceiling.
func WithMaxDepth(n int) Config {
	return func(env *PEnv) *PVal {
		env.Runtime.MaxDepth = n
		return Bool(true)
	}
}

// WithReader returns a Config that makes the environment use r to parse
// source streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *PEnv) *PVal {
		env.Runtime.Reader = r
		return Bool(true)
	}
}

// WithProfiler returns a Config that installs p on the environment runtime.
func WithProfiler(p Profiler) Config {
	return func(env *PEnv) *PVal {
		env.Runtime.Profiler = p
		return Bool(true)
	}
}
