// Copyright © 2025 The Peano authors

package peano

import (
	"io"
	"os"
	"sync/atomic"
)

// DefaultMaxDepth is the application-dispatch depth ceiling installed by
// StandardRuntime.  Exceeding the ceiling fails evaluation with a
// recursion-limit error instead of faulting the host stack.
const DefaultMaxDepth = 10000

// Reader abstracts a parser for source streams, decoupling the core from the
// parser packages.  A Reader returns the expressions contained in a source
// stream in order.
type Reader interface {
	Read(name string, r io.Reader) ([]*PVal, error)
}

// Runtime is an object underlying a tree of PEnv values.  It holds shared
// state: the diagnostic output stream, the depth ceiling, an optional
// profiler, and the Reader used to load source text.
type Runtime struct {
	Stderr   io.Writer
	Profiler Profiler
	Reader   Reader

	// MaxDepth bounds the application-dispatch depth.  Zero or negative
	// disables the ceiling.
	MaxDepth int

	depth  int
	numenv atomicCounter
}

// StandardRuntime returns a new Runtime with Stderr set to os.Stderr and the
// default depth ceiling.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stderr:   os.Stderr,
		MaxDepth: DefaultMaxDepth,
	}
}

// GenEnvID returns a process-unique identifier for a new environment.
func (r *Runtime) GenEnvID() uint {
	return r.numenv.Add(1)
}

// enter records one level of application dispatch.  It returns false when the
// configured ceiling would be exceeded.
func (r *Runtime) enter() bool {
	if r.MaxDepth > 0 && r.depth >= r.MaxDepth {
		return false
	}
	r.depth++
	return true
}

func (r *Runtime) leave() {
	r.depth--
}

type atomicCounter uint64

func (c *atomicCounter) Add(n uint) uint {
	return uint(atomic.AddUint64((*uint64)(c), uint64(n)))
}
