package entity

import (
	"maps"
	"strings"
	"time"
)

// Message is one inbound MQTT delivery. Payload is untrusted.
type Message struct {
	Topic      string
	Payload    []byte
	ReceivedAt time.Time
	MessageID  uint16
	QoS        byte
	Duplicate  bool
}

// Category decides which log panel a message lands in.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryGeneral
	CategoryCommand
	CategoryAlertRed
	CategoryAlertAmber
	CategoryAlertGreen
	CategoryStatus
	CategoryTelemetry
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "unknown",
	CategoryGeneral:    "general",
	CategoryCommand:    "command",
	CategoryAlertRed:   "red",
	CategoryAlertAmber: "amber",
	CategoryAlertGreen: "green",
	CategoryStatus:     "status",
	CategoryTelemetry:  "telemetry",
}

// PanelCategories lists the log panels in display and export order.
var PanelCategories = []Category{
	CategoryGeneral,
	CategoryCommand,
	CategoryAlertRed,
	CategoryAlertAmber,
	CategoryAlertGreen,
	CategoryStatus,
	CategoryTelemetry,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return categoryNames[CategoryUnknown]
}

// Label is the capitalised name used in exports.
func (c Category) Label() string {
	name := c.String()

	return strings.ToUpper(name[:1]) + name[1:]
}

// IsAlert reports whether c is one of the three alert severities.
func (c Category) IsAlert() bool {
	return c == CategoryAlertRed || c == CategoryAlertAmber || c == CategoryAlertGreen
}

// Severity maps an alert category to its severity. ok is false for non-alerts.
func (c Category) Severity() (Severity, bool) {
	switch c {
	case CategoryAlertRed:
		return SeverityRed, true
	case CategoryAlertAmber:
		return SeverityAmber, true
	case CategoryAlertGreen:
		return SeverityGreen, true
	default:
		return "", false
	}
}

// ParseCategory accepts the lowercase names produced by String.
func ParseCategory(s string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == needle {
			return c, true
		}
	}

	return CategoryUnknown, false
}

// ClassifiedMessage is the result of classifying a Message. It is not modified after construction.
type ClassifiedMessage struct {
	Category    Category
	DisplayText string
	structured  map[string]string
	Source      *Message
}

// NewClassifiedMessage copies structured so callers cannot mutate the result afterwards.
func NewClassifiedMessage(category Category, displayText string, structured map[string]string, source *Message) *ClassifiedMessage {
	var fields map[string]string
	if structured != nil {
		fields = maps.Clone(structured)
	}

	return &ClassifiedMessage{
		Category:    category,
		DisplayText: displayText,
		structured:  fields,
		Source:      source,
	}
}

// Structured returns a copy of the decoded fields, or nil for unstructured payloads.
func (m *ClassifiedMessage) Structured() map[string]string {
	if m.structured == nil {
		return nil
	}

	return maps.Clone(m.structured)
}

// Field returns a single structured field.
func (m *ClassifiedMessage) Field(key string) (string, bool) {
	v, ok := m.structured[key]

	return v, ok
}
