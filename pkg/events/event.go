package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the JSON body of every message the catalog publishes.
type Event struct {
	Event         string    `json:"event"` // e.g. "item.created"
	Version       string    `json:"version"`
	Source        string    `json:"source"` // publishing service
	Timestamp     time.Time `json:"timestamp"`
	Payload       any       `json:"payload"`
	TraceID       string    `json:"traceId"`
	CorrelationID string    `json:"correlationId"`
}

type Headers struct {
	TraceID       string
	CorrelationID string
	Service       string
}

func NewEvent(eventName, version string, payload any, headers Headers) *Event {
	return &Event{
		Event:         eventName,
		Version:       version,
		Source:        headers.Service,
		Timestamp:     time.Now().UTC(),
		Payload:       payload,
		TraceID:       headers.TraceID,
		CorrelationID: headers.CorrelationID,
	}
}

// NewHeaders returns headers with fresh trace and correlation ids.
func NewHeaders(service string) Headers {
	return Headers{
		TraceID:       GenerateTraceID(),
		CorrelationID: GenerateCorrelationID(),
		Service:       service,
	}
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetRoutingKey is "<event>.<version>", e.g. "item.created.v1".
func (e *Event) GetRoutingKey() string {
	return e.Event + "." + e.Version
}

func GenerateTraceID() string {
	return uuid.NewString()
}

func GenerateCorrelationID() string {
	return uuid.NewString()
}
