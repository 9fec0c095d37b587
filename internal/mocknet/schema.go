package mocknet

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// PayloadKind names a JSON document shape the harness produces or mocks.
type PayloadKind string

const (
	KindWebhookEvent  PayloadKind = "webhook-event"
	KindCampaignList  PayloadKind = "campaign-list"
	KindErrorResponse PayloadKind = "error-response"
)

const webhookEventSchema = `{
  "type": "object",
  "required": ["data"],
  "properties": {
    "data": {
      "type": "object",
      "required": ["event_type", "payload"],
      "properties": {
        "event_type": {"type": "string", "minLength": 1},
        "payload": {"type": "object"}
      }
    }
  }
}`

const campaignListSchema = `{
  "type": "object",
  "required": ["data"],
  "properties": {
    "data": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "status": {"type": "string"}
        }
      }
    }
  }
}`

const errorResponseSchema = `{
  "type": "object",
  "required": ["error"],
  "properties": {
    "error": {
      "type": "object",
      "required": ["code", "message"],
      "properties": {
        "code": {"type": "string"},
        "message": {"type": "string"},
        "status": {"type": "integer"}
      }
    }
  }
}`

// SchemaRegistry validates harness-produced JSON documents against their
// schemas. A payload failing validation is a programming error in the test,
// caught before it reaches the application.
type SchemaRegistry struct {
	mu      sync.RWMutex
	schemas map[PayloadKind]*gojsonschema.Schema
}

// NewSchemaRegistry creates a registry with the built-in schemas compiled.
func NewSchemaRegistry() (*SchemaRegistry, error) {
	sr := &SchemaRegistry{schemas: make(map[PayloadKind]*gojsonschema.Schema)}
	builtins := map[PayloadKind]string{
		KindWebhookEvent:  webhookEventSchema,
		KindCampaignList:  campaignListSchema,
		KindErrorResponse: errorResponseSchema,
	}
	for kind, raw := range builtins {
		if err := sr.register(kind, raw); err != nil {
			return nil, err
		}
	}
	return sr, nil
}

// RegisterSchema compiles and registers a schema for kind, replacing any
// earlier registration.
func (sr *SchemaRegistry) RegisterSchema(kind PayloadKind, rawJSON string) error {
	return sr.register(kind, rawJSON)
}

func (sr *SchemaRegistry) register(kind PayloadKind, rawJSON string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(rawJSON))
	if err != nil {
		return fmt.Errorf("could not compile schema for %s: %w", kind, err)
	}
	sr.mu.Lock()
	sr.schemas[kind] = schema
	sr.mu.Unlock()
	return nil
}

// Validate checks doc against the schema registered for kind. Unknown
// kinds are an error: a suite asserting on an unregistered shape is a bug.
func (sr *SchemaRegistry) Validate(kind PayloadKind, doc interface{}) error {
	sr.mu.RLock()
	schema, ok := sr.schemas[kind]
	sr.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no schema registered for kind %s", kind)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("could not marshal document for validation: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", kind, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%s document invalid: %s", kind, strings.Join(msgs, "; "))
	}
	return nil
}
