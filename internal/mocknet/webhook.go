package mocknet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/logger"
)

// EventType is a simulated telephony webhook event.
type EventType string

const (
	EventCallInitiated EventType = "call.initiated"
	EventCallAnswered  EventType = "call.answered"
	EventCallHangup    EventType = "call.hangup"
	EventDisposition   EventType = "call.disposition"
)

const webhookPath = "/api/webhooks/telnyx"

// WebhookSender delivers simulated telephony events to the backend,
// standing in for the real webhook origin during dialer tests.
type WebhookSender struct {
	apiURL  string
	client  *http.Client
	schemas *SchemaRegistry
	log     logger.Logger
}

// NewWebhookSender creates a sender posting to apiURL's webhook endpoint.
func NewWebhookSender(apiURL string, schemas *SchemaRegistry, log logger.Logger) *WebhookSender {
	return &WebhookSender{
		apiURL:  apiURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		schemas: schemas,
		log:     log,
	}
}

// Send posts one event envelope `{"data":{"event_type":...,"payload":...}}`.
// The payload gets a generated id when the caller did not set one, and the
// envelope is schema-validated before it leaves the harness.
func (w *WebhookSender) Send(ctx context.Context, event EventType, payload map[string]interface{}) error {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if _, ok := payload["id"]; !ok {
		payload["id"] = uuid.NewString()
	}
	envelope := map[string]interface{}{
		"data": map[string]interface{}{
			"event_type": string(event),
			"payload":    payload,
		},
	}
	if err := w.schemas.Validate(KindWebhookEvent, envelope); err != nil {
		return fmt.Errorf("refusing to send malformed webhook: %w", err)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("could not marshal webhook body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.apiURL+webhookPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook endpoint returned %d: %s", resp.StatusCode, snippet)
	}
	w.log.Info("webhook delivered", map[string]interface{}{
		"event_type": string(event),
		"status":     resp.StatusCode,
	})
	return nil
}
