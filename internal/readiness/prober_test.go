package readiness

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProber_Wait(t *testing.T) {
	tests := []struct {
		name       string
		failures   int
		wantChecks int
		wantSleeps int
	}{
		{name: "ready immediately", failures: 0, wantChecks: 1, wantSleeps: 0},
		{name: "ready after one failure", failures: 1, wantChecks: 2, wantSleeps: 1},
		{name: "ready after five failures", failures: 5, wantChecks: 6, wantSleeps: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(time.Second, &out)

			sleeps := 0
			p.sleep = func(d time.Duration) {
				assert.Equal(t, time.Second, d)
				sleeps++
			}

			checks := 0
			p.Wait(func() error {
				checks++
				if checks <= tt.failures {
					return errors.New("connection refused")
				}
				return nil
			})

			assert.Equal(t, tt.wantChecks, checks)
			assert.Equal(t, tt.wantSleeps, sleeps)
			assert.Contains(t, out.String(), "Waiting for database...")
			assert.Contains(t, out.String(), "Database available!")
			if tt.failures > 0 {
				assert.Contains(t, out.String(), "Database unavailable, waiting 1s...")
			}
		})
	}
}
