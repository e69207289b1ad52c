package reactive

import (
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/vango-dev/reflow/internal/errors"
)

var (
	diagnostics atomic.Bool
	constructed atomic.Int64
)

// SetDiagnostics enables or disables runtime checks that are too costly
// for production: goroutine affinity of value mutation and a count of
// constructed values.
func SetDiagnostics(enabled bool) {
	diagnostics.Store(enabled)
}

// DiagnosticsEnabled reports whether diagnostics are on.
func DiagnosticsEnabled() bool {
	return diagnostics.Load()
}

// Stats is a snapshot of diagnostic counters.
type Stats struct {
	// Constructed counts values created while diagnostics were enabled.
	Constructed int64
}

// ReadStats returns the current diagnostic counters.
func ReadStats() Stats {
	return Stats{Constructed: constructed.Load()}
}

// ResetStats zeroes the diagnostic counters.
func ResetStats() {
	constructed.Store(0)
}

func track() {
	if diagnostics.Load() {
		constructed.Add(1)
	}
}

// checkAffinity pins a value to the goroutine that first mutates it and
// panics if another goroutine mutates it later.
func checkAffinity(b *base) {
	if !diagnostics.Load() {
		return
	}
	gid := goid.Get()
	if b.owner == 0 {
		b.owner = gid
		return
	}
	if b.owner != gid {
		panic(errors.New("R020").
			WithField("value", b.Name()).
			WithField("owner", b.owner).
			WithField("goroutine", gid))
	}
}
