package mocknet

import (
	"fmt"
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// StubResponse is the canned reply served for an intercepted request.
type StubResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// Rule binds a URL glob pattern to a stub response.
type Rule struct {
	Pattern  string
	Response StubResponse
}

// RouteTable collects route-mock rules for one browser page. Registration
// is idempotent per pattern: registering the same pattern again replaces
// the earlier rule. Rules apply for the page's lifetime once installed.
type RouteTable struct {
	mu    sync.Mutex
	rules []Rule
}

// NewRouteTable creates an empty route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{}
}

// Register adds or replaces the rule for pattern.
func (rt *RouteTable) Register(pattern string, resp StubResponse) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if resp.Status == 0 {
		resp.Status = 200
	}
	if resp.ContentType == "" {
		resp.ContentType = "application/json"
	}
	for i, r := range rt.rules {
		if r.Pattern == pattern {
			rt.rules[i].Response = resp
			return
		}
	}
	rt.rules = append(rt.rules, Rule{Pattern: pattern, Response: resp})
}

// RegisterJSON registers pattern with a JSON body and the given status.
func (rt *RouteTable) RegisterJSON(pattern string, status int, body string) {
	rt.Register(pattern, StubResponse{Status: status, Body: []byte(body)})
}

// Rules returns a copy of the registered rules in registration order.
func (rt *RouteTable) Rules() []Rule {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	out := make([]Rule, len(rt.rules))
	copy(out, rt.rules)
	return out
}

// Match returns the stub response for the first rule whose pattern matches
// url, or false when no rule applies. Patterns are distinct by Register's
// replacement semantics, so first-match order is registration order.
func (rt *RouteTable) Match(url string) (StubResponse, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	for _, r := range rt.rules {
		if GlobMatch(r.Pattern, url) {
			return r.Response, true
		}
	}
	return StubResponse{}, false
}

// Apply installs every registered rule on the page. Must be called before
// the navigation whose requests should be intercepted.
func (rt *RouteTable) Apply(page playwright.Page) error {
	for _, rule := range rt.Rules() {
		resp := rule.Response
		err := page.Route(rule.Pattern, func(route playwright.Route) {
			_ = route.Fulfill(playwright.RouteFulfillOptions{
				Status:      playwright.Int(resp.Status),
				ContentType: playwright.String(resp.ContentType),
				Body:        resp.Body,
			})
		})
		if err != nil {
			return fmt.Errorf("could not install route mock %q: %w", rule.Pattern, err)
		}
	}
	return nil
}

// GlobMatch reports whether url matches a playwright-style URL glob:
// `**` matches any run of characters, `*` any run excluding `/`.
// Everything else matches literally, including `?` — URLs carry query
// strings, so URL globs have no single-character wildcard. Match must
// agree with what page.Route intercepts for the same pattern.
func GlobMatch(pattern, url string) bool {
	return globMatch(pattern, url)
}

func globMatch(p, s string) bool {
	for len(p) > 0 {
		switch {
		case strings.HasPrefix(p, "**"):
			rest := p[2:]
			if rest == "" {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if globMatch(rest, s[i:]) {
					return true
				}
			}
			return false
		case p[0] == '*':
			rest := p[1:]
			for i := 0; i <= len(s); i++ {
				if i > 0 && s[i-1] == '/' {
					break
				}
				if globMatch(rest, s[i:]) {
					return true
				}
			}
			return false
		default:
			if len(s) == 0 || p[0] != s[0] {
				return false
			}
			p, s = p[1:], s[1:]
		}
	}
	return len(s) == 0
}
