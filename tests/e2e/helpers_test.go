package e2e

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/check"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/config"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/harness"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/locate"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/logger"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/mocknet"
)

// Loose text patterns kept as named constants: the app has shipped several
// wordings for these states and the suites tolerate all of them.
const (
	dialerActivePattern   = "active|calling|dialing"
	emptyCampaignsPattern = "no campaigns|create campaign"
	errorPattern          = "error|failed"
)

// rig bundles the per-test harness pieces. Each test owns an isolated
// browser context; nothing survives Teardown.
type rig struct {
	Browser *harness.Browser
	Session *harness.Session
	Check   *check.Checker
	Resolve *locate.Resolver
	Config  *config.TestConfig
}

// newRig sets up a browser for one test, skipping when the web app is not
// reachable so the suite can run in environments without a deployment.
func newRig(t *testing.T) *rig {
	t.Helper()
	cfg := config.GetConfig()
	if os.Getenv("SKIP_E2E") == "1" {
		t.Skip("SKIP_E2E=1")
	}
	if !config.Reachable(cfg.BaseURL) {
		t.Skipf("web app at %s not reachable", cfg.BaseURL)
	}

	browser := harness.NewBrowser(t)
	require.NoError(t, browser.Setup(), "browser setup failed")
	t.Cleanup(browser.Teardown)

	return &rig{
		Browser: browser,
		Session: harness.NewSession(browser),
		Check:   browser.Checker(),
		Resolve: browser.Resolver(),
		Config:  cfg,
	}
}

// webhooks returns a sender for simulated telephony events.
func (r *rig) webhooks(t *testing.T) *mocknet.WebhookSender {
	t.Helper()
	schemas, err := mocknet.NewSchemaRegistry()
	require.NoError(t, err)
	return mocknet.NewWebhookSender(r.Config.APIURL, schemas, logger.NewLogrusLogger(r.Config.LogLevel))
}
