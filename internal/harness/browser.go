package harness

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/check"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/config"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/locate"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/logger"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/mocknet"
)

// Browser owns the playwright stack for one test: driver, browser,
// context, page. Each test gets its own isolated context; nothing is
// shared across parallel tests.
type Browser struct {
	Playwright *playwright.Playwright
	Browser    playwright.Browser
	Context    playwright.BrowserContext
	Page       playwright.Page
	Config     *config.TestConfig
	Log        logger.Logger
	t          *testing.T
}

// NewBrowser creates a browser helper for one test.
func NewBrowser(t *testing.T) *Browser {
	cfg := config.GetConfig()
	return &Browser{
		Config: cfg,
		Log:    logger.NewLogrusLogger(cfg.LogLevel).WithFields(map[string]interface{}{"test": t.Name()}),
		t:      t,
	}
}

// Setup initializes playwright, launches Chromium, and opens a page with
// the default viewport and timeouts.
func (b *Browser) Setup() error {
	if os.Getenv("PLAYWRIGHT_PREINSTALLED") != "1" {
		if err := playwright.Install(); err != nil {
			return fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}
	pw, err := playwright.Run()
	if err != nil {
		// Retry once after an explicit driver install; the driver version
		// can lag the image.
		_ = playwright.Install()
		pw, err = playwright.Run()
		if err != nil {
			return fmt.Errorf("could not start playwright after retry: %w", err)
		}
	}
	b.Playwright = pw

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.Config.Headless),
		SlowMo:   playwright.Float(float64(b.Config.SlowMo)),
	})
	if err != nil {
		return fmt.Errorf("could not launch browser: %w", err)
	}
	b.Browser = browser

	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
	}
	if b.Config.Videos {
		ctxOpts.RecordVideo = &playwright.RecordVideo{Dir: "./test-results/videos"}
	}
	context, err := browser.NewContext(ctxOpts)
	if err != nil {
		return fmt.Errorf("could not create context: %w", err)
	}
	b.Context = context

	page, err := context.NewPage()
	if err != nil {
		return fmt.Errorf("could not create page: %w", err)
	}
	b.Page = page
	page.SetDefaultTimeout(float64(b.Config.Timeout.Milliseconds()))

	return nil
}

// Teardown screenshots failed tests, then closes the whole stack. All
// route mocks and session state die with the context.
func (b *Browser) Teardown() {
	if b.t.Failed() && b.Config.Screenshots && b.Page != nil {
		path := fmt.Sprintf("./test-results/screenshots/%s_%d.png", b.t.Name(), time.Now().Unix())
		_, _ = b.Page.Screenshot(playwright.PageScreenshotOptions{
			Path: playwright.String(path),
		})
	}
	if b.Page != nil {
		_ = b.Page.Close()
	}
	if b.Context != nil {
		_ = b.Context.Close()
	}
	if b.Browser != nil {
		_ = b.Browser.Close()
	}
	if b.Playwright != nil {
		_ = b.Playwright.Stop()
	}
}

// Navigate goes to a path relative to the base URL.
func (b *Browser) Navigate(path string) error {
	if _, err := b.Page.Goto(b.Config.BaseURL + path); err != nil {
		return fmt.Errorf("could not navigate to %s: %w", path, err)
	}
	return nil
}

// WaitForIdle waits until in-flight requests settle, for pages that load
// their data asynchronously.
func (b *Browser) WaitForIdle() error {
	return b.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

// SetViewport resizes the page for responsive checks.
func (b *Browser) SetViewport(width, height int) error {
	if err := b.Page.SetViewportSize(width, height); err != nil {
		return fmt.Errorf("could not set viewport %dx%d: %w", width, height, err)
	}
	return nil
}

// Resolver returns an interaction driver bound to this page.
func (b *Browser) Resolver() *locate.Resolver {
	return locate.NewResolver(b.Page, b.Config.ProbeTimeout)
}

// Checker returns an assertion layer bound to this page.
func (b *Browser) Checker() *check.Checker {
	return check.NewChecker(b.t, b.Page, b.Resolver(), b.Config.Timeout, b.Log)
}

// MockRoutes installs the route table on this page. Rules stay in force
// for the page's lifetime.
func (b *Browser) MockRoutes(rt *mocknet.RouteTable) error {
	return rt.Apply(b.Page)
}
