package readiness

import (
	"fmt"
	"io"
	"time"
)

// CheckFunc reports whether the dependency is reachable.
// A nil return means the dependency accepted a connection.
type CheckFunc func() error

// Prober blocks until a dependency check succeeds. It retries at a
// fixed interval without bound; the process supervisor is expected to
// apply any outer timeout or kill policy.
type Prober struct {
	interval time.Duration
	out      io.Writer
	sleep    func(time.Duration)
}

// New creates a Prober that writes progress lines to out and pauses
// for interval between attempts.
func New(interval time.Duration, out io.Writer) *Prober {
	return &Prober{
		interval: interval,
		out:      out,
		sleep:    time.Sleep,
	}
}

// Wait invokes check repeatedly until it succeeds. Each failed attempt
// is followed by exactly one sleep; the successful attempt returns
// without sleeping.
func (p *Prober) Wait(check CheckFunc) {
	fmt.Fprintln(p.out, "Waiting for database...")
	for check() != nil {
		fmt.Fprintf(p.out, "Database unavailable, waiting %s...\n", p.interval)
		p.sleep(p.interval)
	}
	fmt.Fprintln(p.out, "Database available!")
}
