// Package locate resolves UI elements through an ordered list of candidate
// selector strategies, so one test script can tolerate multiple UI variants
// without branching per environment.
package locate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ErrNotFound is returned when no candidate strategy yields a visible
// element within its probe window.
var ErrNotFound = errors.New("no visible element matched any candidate strategy")

// Kind names one selector strategy.
type Kind string

const (
	ByRole        Kind = "role"
	ByLabel       Kind = "label"
	ByText        Kind = "text"
	ByPlaceholder Kind = "placeholder"
	ByTestID      Kind = "testid"
	ByCSS         Kind = "css"
)

// Candidate is a single selector attempt: a strategy plus its query value.
type Candidate struct {
	Kind  Kind
	Value string
	// Name is the accessible name, only used with ByRole.
	Name string
}

func (c Candidate) String() string {
	if c.Kind == ByRole && c.Name != "" {
		return fmt.Sprintf("%s=%s[name=%q]", c.Kind, c.Value, c.Name)
	}
	return fmt.Sprintf("%s=%q", c.Kind, c.Value)
}

// Target describes a UI element by every selector the suites know for it.
// Resolution tries the populated strategies in contract order: role with
// accessible name, label, visible text, placeholder, test id, raw CSS.
type Target struct {
	Desc        string // human-readable, used in failure messages
	Role        string
	RoleName    string
	Label       string
	Text        string
	Placeholder string
	TestID      string
	CSS         string
}

// Candidates returns the ordered, populated strategies for the target.
// Pure function so the fallback order is testable without a browser.
func (t Target) Candidates() []Candidate {
	var out []Candidate
	if t.Role != "" {
		out = append(out, Candidate{Kind: ByRole, Value: t.Role, Name: t.RoleName})
	}
	if t.Label != "" {
		out = append(out, Candidate{Kind: ByLabel, Value: t.Label})
	}
	if t.Text != "" {
		out = append(out, Candidate{Kind: ByText, Value: t.Text})
	}
	if t.Placeholder != "" {
		out = append(out, Candidate{Kind: ByPlaceholder, Value: t.Placeholder})
	}
	if t.TestID != "" {
		out = append(out, Candidate{Kind: ByTestID, Value: t.TestID})
	}
	if t.CSS != "" {
		out = append(out, Candidate{Kind: ByCSS, Value: t.CSS})
	}
	return out
}

// Describe returns the target's diagnostic name.
func (t Target) Describe() string {
	if t.Desc != "" {
		return t.Desc
	}
	cands := t.Candidates()
	parts := make([]string, len(cands))
	for i, c := range cands {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}

// Resolver locates elements on one page with a bounded probe window per
// candidate strategy.
type Resolver struct {
	page  playwright.Page
	probe time.Duration
}

// NewResolver creates a resolver for page. probe bounds each candidate's
// visibility wait; zero means the 4 second default.
func NewResolver(page playwright.Page, probe time.Duration) *Resolver {
	if probe <= 0 {
		probe = 4 * time.Second
	}
	return &Resolver{page: page, probe: probe}
}

// Locator builds the playwright locator for this candidate on page. All
// harness layers go through this one mapping so resolution and polling
// probes can never disagree about what a candidate selects.
func (c Candidate) Locator(page playwright.Page) playwright.Locator {
	switch c.Kind {
	case ByRole:
		opts := playwright.PageGetByRoleOptions{}
		if c.Name != "" {
			opts.Name = c.Name
		}
		return page.GetByRole(playwright.AriaRole(c.Value), opts)
	case ByLabel:
		return page.GetByLabel(c.Value)
	case ByText:
		return page.GetByText(c.Value)
	case ByPlaceholder:
		return page.GetByPlaceholder(c.Value)
	case ByTestID:
		return page.GetByTestId(c.Value)
	default:
		return page.Locator(c.Value)
	}
}

// Resolve returns the first visible locator among the target's candidates.
// Each candidate gets an independent probe window; when all fail the error
// wraps ErrNotFound and names every strategy tried.
func (r *Resolver) Resolve(target Target) (playwright.Locator, error) {
	cands := target.Candidates()
	if len(cands) == 0 {
		return nil, fmt.Errorf("target %q has no selector strategies: %w", target.Desc, ErrNotFound)
	}
	tried := make([]string, 0, len(cands))
	for _, c := range cands {
		loc := c.Locator(r.page).First()
		err := loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(float64(r.probe.Milliseconds())),
		})
		if err == nil {
			return loc, nil
		}
		tried = append(tried, c.String())
	}
	return nil, fmt.Errorf("%s: tried %s: %w", target.Describe(), strings.Join(tried, ", "), ErrNotFound)
}

// Probe reports whether the target becomes visible within the probe
// window. Used as the guard for optional checks and actions.
func (r *Resolver) Probe(target Target) bool {
	_, err := r.Resolve(target)
	return err == nil
}
