package check

import (
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/locate"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/logger"
)

// Checker binds the assertion layer to one page. Required assertions fail
// the test immediately; optional ones degrade to recorded skips.
type Checker struct {
	t       *testing.T
	page    playwright.Page
	res     *locate.Resolver
	timeout time.Duration
	log     logger.Logger

	mu      sync.Mutex
	skipped []string
}

// NewChecker creates a checker with the given default assertion timeout.
func NewChecker(t *testing.T, page playwright.Page, res *locate.Resolver, timeout time.Duration, log logger.Logger) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Checker{t: t, page: page, res: res, timeout: timeout, log: log}
}

// Skipped returns the descriptions of optional checks whose guard failed.
func (c *Checker) Skipped() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.skipped))
	copy(out, c.skipped)
	return out
}

func (c *Checker) recordSkip(desc string) {
	c.mu.Lock()
	c.skipped = append(c.skipped, desc)
	c.mu.Unlock()
	c.log.Info("optional check skipped, feature absent", map[string]interface{}{"check": desc})
}

// caseInsensitive compiles pattern with the (?i) flag. Patterns are suite
// constants, so a bad one fails the test rather than returning an error.
func (c *Checker) caseInsensitive(pattern string) *regexp.Regexp {
	c.t.Helper()
	re, err := regexp.Compile("(?i)" + pattern)
	require.NoError(c.t, err, "invalid assertion pattern %q", pattern)
	return re
}

// RequireVisible asserts the target becomes visible.
func (c *Checker) RequireVisible(target locate.Target) {
	c.t.Helper()
	_, err := c.res.Resolve(target)
	require.NoError(c.t, err, "required element %s not visible", target.Describe())
}

// RequireHidden asserts the target is absent or hidden by the deadline.
func (c *Checker) RequireHidden(target locate.Target) {
	c.t.Helper()
	err := Poll(c.timeout, func() error {
		if c.probeOnce(target) {
			return fmt.Errorf("element %s still visible", target.Describe())
		}
		return nil
	})
	require.NoError(c.t, err)
}

// probeOnce checks current visibility without waiting, for polled
// conditions that re-resolve each attempt.
func (c *Checker) probeOnce(target locate.Target) bool {
	for _, cand := range target.Candidates() {
		loc := cand.Locator(c.page).First()
		if visible, err := loc.IsVisible(); err == nil && visible {
			return true
		}
	}
	return false
}

// RequireTextMatches asserts the target's text matches pattern
// (case-insensitive), polling until the assertion timeout.
func (c *Checker) RequireTextMatches(target locate.Target, pattern string) {
	c.t.Helper()
	re := c.caseInsensitive(pattern)
	loc, err := c.res.Resolve(target)
	require.NoError(c.t, err, "element %s not visible for text check", target.Describe())

	var last string
	err = Poll(c.timeout, func() error {
		text, terr := loc.InnerText()
		if terr != nil {
			return fmt.Errorf("could not read text: %w", terr)
		}
		last = text
		if !re.MatchString(text) {
			return fmt.Errorf("text %q does not match %q", text, pattern)
		}
		return nil
	})
	require.NoError(c.t, err, "element %s: last text %q", target.Describe(), last)
}

// RequirePageText asserts the pattern appears anywhere on the page.
func (c *Checker) RequirePageText(pattern string) {
	c.t.Helper()
	re := c.caseInsensitive(pattern)
	var last int
	err := Poll(c.timeout, func() error {
		body, berr := c.page.Locator("body").InnerText()
		if berr != nil {
			return fmt.Errorf("could not read page body: %w", berr)
		}
		last = len(body)
		if !re.MatchString(body) {
			return fmt.Errorf("page text does not match %q", pattern)
		}
		return nil
	})
	require.NoError(c.t, err, "page (%d chars) never matched %q", last, pattern)
}

// RequireCount asserts the target resolves to exactly n elements.
func (c *Checker) RequireCount(target locate.Target, n int) {
	c.t.Helper()
	loc, err := c.res.Resolve(target)
	require.NoError(c.t, err, "element %s not visible for count check", target.Describe())
	var last int
	err = Poll(c.timeout, func() error {
		count, cerr := loc.Count()
		if cerr != nil {
			return fmt.Errorf("could not count: %w", cerr)
		}
		last = count
		if count != n {
			return fmt.Errorf("count %d, want %d", count, n)
		}
		return nil
	})
	require.NoError(c.t, err, "element %s: last count %d", target.Describe(), last)
}

// RequireURLMatches asserts the page URL matches pattern within the
// navigation budget.
func (c *Checker) RequireURLMatches(pattern string, timeout time.Duration) {
	c.t.Helper()
	if timeout <= 0 {
		timeout = c.timeout
	}
	re := c.caseInsensitive(pattern)
	var last string
	err := Poll(timeout, func() error {
		last = c.page.URL()
		if !re.MatchString(last) {
			return fmt.Errorf("url %q does not match %q", last, pattern)
		}
		return nil
	})
	require.NoError(c.t, err, "navigation never reached %q, last url %q", pattern, last)
}

// OptionalVisible asserts visibility only when the guard probe finds the
// target at all; absence records a skip.
func (c *Checker) OptionalVisible(target locate.Target) Outcome {
	c.t.Helper()
	return c.optional(OptionalCheck{
		Desc:  "visible: " + target.Describe(),
		Guard: func() bool { return c.res.Probe(target) },
		// Guard already proved visibility.
		Assert: func() error { return nil },
	})
}

// OptionalTextMatches asserts the target's text when the target is
// present; absence records a skip.
func (c *Checker) OptionalTextMatches(target locate.Target, pattern string) Outcome {
	c.t.Helper()
	re := c.caseInsensitive(pattern)
	return c.optional(OptionalCheck{
		Desc:  fmt.Sprintf("text of %s matches %q", target.Describe(), pattern),
		Guard: func() bool { return c.res.Probe(target) },
		Assert: func() error {
			loc, err := c.res.Resolve(target)
			if err != nil {
				return err
			}
			var last string
			perr := Poll(c.timeout, func() error {
				text, terr := loc.InnerText()
				if terr != nil {
					return terr
				}
				last = text
				if !re.MatchString(text) {
					return fmt.Errorf("text %q does not match %q", text, pattern)
				}
				return nil
			})
			if perr != nil {
				return fmt.Errorf("last text %q: %w", last, perr)
			}
			return nil
		},
	})
}

func (c *Checker) optional(oc OptionalCheck) Outcome {
	c.t.Helper()
	outcome, err := RunOptional(oc)
	switch outcome {
	case OutcomeSkipped:
		c.recordSkip(oc.Desc)
	case OutcomeFailed:
		// A present element failing its assertion is a real failure,
		// not environment variance.
		require.NoError(c.t, err)
	}
	return outcome
}
