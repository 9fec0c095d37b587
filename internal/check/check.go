// Package check verifies UI state with polling assertions. Checks come in
// two typed variants: a RequiredCheck fails the test when unmet, an
// OptionalCheck runs only when its visibility guard holds and records a
// skip otherwise, so reporting can tell "feature absent" from "passed".
package check

import (
	"fmt"
	"time"
)

// Outcome classifies one executed check.
type Outcome int

const (
	OutcomePassed Outcome = iota
	OutcomeFailed
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Probe reports whether a guard condition currently holds. Probes are
// expected to bound their own waiting.
type Probe func() bool

// RequiredCheck is an assertion that must hold for the test to pass.
type RequiredCheck struct {
	Desc   string
	Assert func() error
}

// OptionalCheck is an assertion guarded by a probe. A false guard is not
// a failure: the check degrades to a recorded skip.
type OptionalCheck struct {
	Desc   string
	Guard  Probe
	Assert func() error
}

// RunRequired executes the check and returns its outcome with any error.
func RunRequired(c RequiredCheck) (Outcome, error) {
	if err := c.Assert(); err != nil {
		return OutcomeFailed, fmt.Errorf("%s: %w", c.Desc, err)
	}
	return OutcomePassed, nil
}

// RunOptional executes the check when its guard holds. The guard never
// runs the assertion on a false probe, and a skip is never an error.
func RunOptional(c OptionalCheck) (Outcome, error) {
	if c.Guard != nil && !c.Guard() {
		return OutcomeSkipped, nil
	}
	if err := c.Assert(); err != nil {
		return OutcomeFailed, fmt.Errorf("%s: %w", c.Desc, err)
	}
	return OutcomePassed, nil
}

// Poll re-evaluates cond with backoff until it returns nil or the timeout
// elapses, returning the last error seen. The interval starts at 100ms
// and doubles up to 500ms.
func Poll(timeout time.Duration, cond func() error) error {
	deadline := time.Now().Add(timeout)
	interval := 100 * time.Millisecond
	var lastErr error
	for {
		lastErr = cond()
		if lastErr == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return lastErr
		}
		time.Sleep(interval)
		if interval < 500*time.Millisecond {
			interval *= 2
			if interval > 500*time.Millisecond {
				interval = 500 * time.Millisecond
			}
		}
	}
}
