package mocknet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/logger"
)

func newTestSender(t *testing.T, handler http.HandlerFunc) (*WebhookSender, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	schemas, err := NewSchemaRegistry()
	require.NoError(t, err)
	return NewWebhookSender(srv.URL, schemas, logger.NewTestLogger(io.Discard)), srv
}

func TestWebhookSenderEnvelope(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]interface{}
	sender, _ := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	})

	err := sender.Send(context.Background(), EventCallAnswered, map[string]interface{}{
		"call_id":     "c-42",
		"campaign_id": "cmp-7",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/webhooks/telnyx", gotPath)
	assert.Equal(t, "application/json", gotContentType)

	data, ok := gotBody["data"].(map[string]interface{})
	require.True(t, ok, "body must carry a data envelope")
	assert.Equal(t, "call.answered", data["event_type"])

	payload, ok := data["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "c-42", payload["call_id"])
	assert.NotEmpty(t, payload["id"], "payload id is generated when absent")
}

func TestWebhookSenderKeepsCallerID(t *testing.T) {
	var gotBody map[string]interface{}
	sender, _ := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	})

	err := sender.Send(context.Background(), EventDisposition, map[string]interface{}{
		"id":          "fixed-id",
		"disposition": "interested",
	})
	require.NoError(t, err)

	payload := gotBody["data"].(map[string]interface{})["payload"].(map[string]interface{})
	assert.Equal(t, "fixed-id", payload["id"])
}

func TestWebhookSenderServerError(t *testing.T) {
	sender, _ := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	err := sender.Send(context.Background(), EventCallInitiated, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhookSenderRefusesMalformedEvent(t *testing.T) {
	called := false
	sender, _ := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := sender.Send(context.Background(), EventType(""), nil)
	require.Error(t, err)
	assert.False(t, called, "malformed envelope must never leave the harness")
}
