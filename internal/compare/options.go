// Package compare aligns variables shared by an input and a reference
// dataset, interpolating 1-D reference data where requested, and
// reduces each aligned pair to a set of absolute and relative error
// metrics with interpolation-aware lower bounds.
package compare

import (
	"fmt"
	"io"
	"os"
)

// Options configures a comparison run. The zero value compares every
// shared variable pointwise and stays silent.
type Options struct {
	// Interpolate names dimensions eligible for spline interpolation
	// of the reference data.
	Interpolate []string

	// Vars, when non-empty, restricts comparison to these variables.
	Vars []string

	// Warnings enables line-oriented diagnostics for skipped
	// variables, interpolation fallbacks, and coordinate mismatches.
	// Diagnostics never alter the computed output.
	Warnings bool

	// WarnWriter receives diagnostics; defaults to os.Stderr.
	WarnWriter io.Writer
}

func (o Options) warnf(format string, args ...any) {
	if !o.Warnings {
		return
	}
	w := o.WarnWriter
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}
