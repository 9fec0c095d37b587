package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/config"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/locate"
)

// ErrNavigationTimeout is returned when sign-in never reaches the
// authenticated landing route within the login budget. Authentication
// failures are fatal per-test; no retry is attempted.
var ErrNavigationTimeout = errors.New("authenticated landing route not reached")

// Session establishes an authenticated browser context for a role before
// a test runs.
type Session struct {
	browser *Browser
}

// NewSession creates a session helper over an initialized browser.
func NewSession(browser *Browser) *Session {
	return &Session{browser: browser}
}

var (
	emailField = locate.Target{
		Desc:        "email field",
		Label:       "Email",
		Placeholder: "Email",
		CSS:         "input[type='email'], input#email, input[name='email']",
	}
	passwordField = locate.Target{
		Desc:        "password field",
		Label:       "Password",
		Placeholder: "Password",
		CSS:         "input[type='password']",
	}
	submitButton = locate.Target{
		Desc: "sign-in submit",
		Role: "button", RoleName: "Sign in",
		CSS: "button[type='submit']",
	}
)

// Login submits credentials on /signin and blocks until the app redirects
// to the dashboard or the login budget elapses.
func (s *Session) Login(email, password string) error {
	if err := s.browser.Navigate("/signin"); err != nil {
		return fmt.Errorf("could not open sign-in page: %w", err)
	}

	res := s.browser.Resolver()
	if err := res.Fill(emailField, email); err != nil {
		return fmt.Errorf("could not fill email: %w", err)
	}
	if err := res.Fill(passwordField, password); err != nil {
		return fmt.Errorf("could not fill password: %w", err)
	}
	if err := res.Click(submitButton); err != nil {
		return fmt.Errorf("could not submit sign-in form: %w", err)
	}

	err := s.browser.Page.WaitForURL("**/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(s.browser.Config.LoginTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("%w after submitting credentials for %s: %v", ErrNavigationTimeout, email, err)
	}
	s.browser.Log.Info("authenticated", map[string]interface{}{"email": email})
	return nil
}

// LoginAs logs in with the credentials configured for role.
func (s *Session) LoginAs(role string) error {
	creds := s.browser.Config.ForRole(role)
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("no credentials configured for role %q", role)
	}
	return s.Login(creds.Email, creds.Password)
}

// LoginAgent logs in with the agent account.
func (s *Session) LoginAgent() error { return s.LoginAs("agent") }

// LoginManager logs in with the manager account.
func (s *Session) LoginManager() error { return s.LoginAs("manager") }

// Credentials returns the account for role, for suites that assert on the
// signed-in identity.
func (s *Session) Credentials(role string) config.Credentials {
	return s.browser.Config.ForRole(role)
}

// Logout clicks a visible logout control when present, falling back to
// the logout route, and waits for the sign-in page.
func (s *Session) Logout() error {
	res := s.browser.Resolver()
	clicked, _ := res.ClickIfVisible(locate.Target{
		Desc: "logout control",
		Role: "button", RoleName: "Sign out",
		CSS: "a[href='/signout'], button:has-text('Logout')",
	})
	if !clicked {
		if err := s.browser.Navigate("/signout"); err != nil {
			return fmt.Errorf("could not reach signout: %w", err)
		}
	}
	err := s.browser.Page.WaitForURL("**/signin**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		return fmt.Errorf("signout redirect failed: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the page currently shows an
// authenticated route.
func (s *Session) IsAuthenticated() bool {
	url := s.browser.Page.URL()
	if url == "" || strings.HasPrefix(url, "about:") || !strings.HasPrefix(url, s.browser.Config.BaseURL) {
		return false
	}
	return !strings.Contains(url, "/signin") && url != s.browser.Config.BaseURL+"/"
}
