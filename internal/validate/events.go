package validate

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/duramedstack/duramed-sla/internal/models"
)

const eventSchemaURL = "https://duramedstack.schemas.local/sla/order-event.schema.json"

// eventSchema is the wire contract for order event payloads. Every event
// must name its order; connectors may attach arbitrary extra fields.
const eventSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"order_id": {"type": "string", "minLength": 1},
		"success": {"type": "boolean"}
	},
	"required": ["order_id"]
}`

// EventValidator checks incoming order event payloads against the wire
// contract before they reach the evaluator.
type EventValidator struct {
	schema *jsonschema.Schema
}

// NewEventValidator compiles the embedded payload schema.
func NewEventValidator() (*EventValidator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(eventSchemaURL, strings.NewReader(eventSchema)); err != nil {
		return nil, fmt.Errorf("event schema load failed: %w", err)
	}
	compiled, err := c.Compile(eventSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("event schema compile failed: %w", err)
	}
	return &EventValidator{schema: compiled}, nil
}

// ValidateEvent checks a single event payload.
func (v *EventValidator) ValidateEvent(event models.Event) error {
	if event.Topic == "" {
		return fmt.Errorf("event missing topic")
	}
	if event.Payload == nil {
		return fmt.Errorf("event %s missing payload", event.Topic)
	}
	if err := v.schema.Validate(event.Payload); err != nil {
		return fmt.Errorf("event %s payload invalid: %w", event.Topic, err)
	}
	return nil
}

// ValidateEvents checks every event of a timeline, reporting the first
// offender by index.
func (v *EventValidator) ValidateEvents(events []models.Event) error {
	for i, event := range events {
		if err := v.ValidateEvent(event); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}
