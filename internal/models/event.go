package models

import "time"

// Event is one record of an order's timeline as supplied by the dispatcher.
// Timestamps are timezone-aware UTC; mixing naive timestamps upstream is a
// caller error and is rejected at the boundary.
type Event struct {
	Topic     string
	Timestamp time.Time
	Payload   map[string]any
}

// OrderID returns the order id carried in the payload, or "" when absent.
func (e Event) OrderID() string {
	id, _ := e.Payload["order_id"].(string)
	return id
}

// PayloadBool reads a boolean payload field, reporting whether it was present.
func (e Event) PayloadBool(key string) (bool, bool) {
	v, ok := e.Payload[key].(bool)
	return v, ok
}
