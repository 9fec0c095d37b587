package mocknet

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Patterns intercepted by the negative-path suites.
const (
	CampaignsPattern   = "**/api/campaigns*"
	DialerStartPattern = "**/api/dialer/start"
)

var stubSchemasOnce = sync.OnceValues(NewSchemaRegistry)

// mustValidStub checks a canned body against its schema. Stub bodies are
// compile-time constants, so a violation is a programming error in the
// harness and panics rather than reaching the application.
func mustValidStub(kind PayloadKind, body string) string {
	sr, err := stubSchemasOnce()
	if err != nil {
		panic(fmt.Sprintf("mocknet: built-in schemas failed to compile: %v", err))
	}
	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		panic(fmt.Sprintf("mocknet: stub body for %s is not JSON: %v", kind, err))
	}
	if err := sr.Validate(kind, doc); err != nil {
		panic(fmt.Sprintf("mocknet: stub body rejected: %v", err))
	}
	return body
}

// EmptyCampaigns returns a table serving an empty campaign list, forcing
// the UI down its empty-state path.
func EmptyCampaigns() *RouteTable {
	rt := NewRouteTable()
	rt.RegisterJSON(CampaignsPattern, 200, mustValidStub(KindCampaignList, `{"data":[]}`))
	return rt
}

// DialerStartError returns a table failing the dialer start call with the
// given status, forcing the UI down its error-state path.
func DialerStartError(status int) *RouteTable {
	rt := NewRouteTable()
	body := fmt.Sprintf(`{"error":{"code":"DIALER_START_FAILED","status":%d,"message":"dialer start failed"}}`, status)
	rt.RegisterJSON(DialerStartPattern, status, mustValidStub(KindErrorResponse, body))
	return rt
}
