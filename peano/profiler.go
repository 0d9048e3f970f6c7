// Copyright © 2025 The Peano authors

package peano

// Profiler receives callbacks around application dispatch.  Implementations
// live in the x/profiler package.
type Profiler interface {
	// IsEnabled reports whether the profiler is recording.
	IsEnabled() bool
	// Enable starts the profiling session.
	Enable() error
	// SetFile sets the output file for profilers that write one.
	SetFile(filename string) error
	// Complete ends the profiling session and flushes output.
	Complete() error
	// Start marks the start of the application of op.  The returned function
	// marks the end of the application.
	Start(op *PVal) func()
}
