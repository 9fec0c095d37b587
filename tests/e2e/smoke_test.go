package e2e

import (
	"testing"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/config"
)

// TestSmokeReachability fails fast with a clear message when the app is
// down, before any browser test spends its timeout budget.
func TestSmokeReachability(t *testing.T) {
	cfg := config.GetConfig()
	if !config.Reachable(cfg.BaseURL) {
		t.Skipf("web app at %s not reachable; browser suites will skip", cfg.BaseURL)
	}
	t.Logf("web app reachable at %s", cfg.BaseURL)
	if cfg.APIURL != cfg.BaseURL && !config.Reachable(cfg.APIURL) {
		t.Errorf("backend at %s not reachable while web app is up", cfg.APIURL)
	}
}
