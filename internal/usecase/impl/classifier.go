package impl

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
)

const (
	emptyPayloadText  = "(empty payload)"
	truncatedPrefixSz = 256

	hintAlert     = "alert"
	hintCommand   = "command"
	hintStatus    = "status"
	hintTelemetry = "telemetry"
)

var defaultCommandMarkers = []string{">", "COMMAND:", "CMD:", "ECHO:"}

// ClassifierParams holds dependencies for the classifier, injected by Fx.
type ClassifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type classifier struct {
	maxPayload     int
	commandMarkers []string
	topicHints     map[string]string
	logger         *slog.Logger
}

// NewClassifier builds a classifier from the classifier and mqtt topic configuration.
func NewClassifier(params ClassifierParams) usecase.Classifier {
	cfg := params.Config

	markers := cfg.Classifier.CommandMarkers
	if len(markers) == 0 {
		markers = defaultCommandMarkers
	}
	upper := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" {
			upper = append(upper, strings.ToUpper(m))
		}
	}

	hints := make(map[string]string, len(cfg.MQTT.Topics))
	for _, topic := range cfg.MQTT.Topics {
		if hint := strings.ToLower(strings.TrimSpace(topic.Category)); hint != "" {
			hints[topic.Topic] = hint
		}
	}

	return &classifier{
		maxPayload:     cfg.Classifier.MaxPayloadBytes,
		commandMarkers: upper,
		topicHints:     hints,
		logger:         params.Logger,
	}
}

// Classify never panics and never returns nil.
func (c *classifier) Classify(msg entity.Message) (result *entity.ClassifiedMessage) {
	source := msg

	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("Classifier recovered from malformed payload",
				slog.String("topic", msg.Topic),
				slog.Any("error", errors.FromPanic(r)),
			)
			result = entity.NewClassifiedMessage(entity.CategoryUnknown, truncate(msg.Payload, truncatedPrefixSz), nil, &source)
		}
	}()

	trimmed := bytes.TrimSpace(msg.Payload)
	if len(trimmed) == 0 {
		return entity.NewClassifiedMessage(entity.CategoryUnknown, emptyPayloadText, nil, &source)
	}

	if c.maxPayload > 0 && len(msg.Payload) > c.maxPayload {
		return entity.NewClassifiedMessage(entity.CategoryUnknown, truncate(msg.Payload, truncatedPrefixSz), nil, &source)
	}

	if trimmed[0] == '{' {
		if obj, ok := decodeObject(trimmed); ok {
			return c.classifyObject(obj, displayable(trimmed), &source)
		}
	}

	return c.classifyText(displayable(trimmed), &source)
}

func (c *classifier) classifyObject(obj map[string]any, raw string, source *entity.Message) *entity.ClassifiedMessage {
	kind := strings.ToLower(strings.TrimSpace(stringValue(obj["type"])))
	switch kind {
	case "red", "amber", "green", hintCommand, hintStatus, hintTelemetry:
	default:
		kind = c.topicHints[source.Topic]
	}

	message := stringValue(obj["message"])
	display := firstNonEmpty(message, raw)

	switch kind {
	case "red", "amber", "green":
		severity, _ := entity.ParseSeverity(kind)

		return entity.NewClassifiedMessage(alertCategory(severity), display, flattenExcept(obj, "type"), source)

	case hintAlert:
		severity, ok := entity.ParseSeverity(firstNonEmpty(stringValue(obj["severity"]), stringValue(obj["level"])))
		if !ok {
			severity = severityFromText(display)
		}

		return entity.NewClassifiedMessage(alertCategory(severity), display, flattenExcept(obj, "type"), source)

	case hintCommand:
		command := ""
		if data, ok := obj["data"].(map[string]any); ok {
			command = stringValue(data["command"])
		}

		return entity.NewClassifiedMessage(entity.CategoryCommand, firstNonEmpty(message, command, raw), flattenExcept(obj, "type"), source)

	case hintStatus:
		fields := flattenExcept(nestedReadings(obj), "type")

		return entity.NewClassifiedMessage(entity.CategoryStatus, firstNonEmpty(message, describe("Status", fields)), fields, source)

	case hintTelemetry:
		readings := numericOnly(nestedReadings(obj))

		return entity.NewClassifiedMessage(entity.CategoryTelemetry, firstNonEmpty(message, describe("Telemetry", readings)), readings, source)

	default:
		return entity.NewClassifiedMessage(entity.CategoryGeneral, display, flattenExcept(obj, "type"), source)
	}
}

func (c *classifier) classifyText(text string, source *entity.Message) *entity.ClassifiedMessage {
	upper := strings.ToUpper(text)
	for _, marker := range c.commandMarkers {
		if strings.HasPrefix(upper, marker) {
			return entity.NewClassifiedMessage(entity.CategoryCommand, text, nil, source)
		}
	}

	if strings.Contains(strings.ToLower(text), hintAlert) {
		return entity.NewClassifiedMessage(alertCategory(severityFromText(text)), text, nil, source)
	}

	switch c.topicHints[source.Topic] {
	case hintAlert:
		return entity.NewClassifiedMessage(alertCategory(severityFromText(text)), text, nil, source)
	case hintCommand:
		return entity.NewClassifiedMessage(entity.CategoryCommand, text, nil, source)
	case hintStatus:
		return entity.NewClassifiedMessage(entity.CategoryStatus, text, nil, source)
	case hintTelemetry:
		return entity.NewClassifiedMessage(entity.CategoryTelemetry, text, nil, source)
	default:
		return entity.NewClassifiedMessage(entity.CategoryGeneral, text, nil, source)
	}
}

func alertCategory(severity entity.Severity) entity.Category {
	switch severity {
	case entity.SeverityAmber:
		return entity.CategoryAlertAmber
	case entity.SeverityGreen:
		return entity.CategoryAlertGreen
	default:
		return entity.CategoryAlertRed
	}
}

// severityFromText looks for a whole-word severity and defaults to red.
func severityFromText(text string) entity.Severity {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, sev := range entity.Severities {
		if slices.Contains(words, string(sev)) {
			return sev
		}
	}

	return entity.SeverityRed
}

func decodeObject(data []byte) (map[string]any, bool) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var obj map[string]any
	if err := decoder.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	// Anything after the object means the payload is not a JSON document.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}

	return obj, true
}

// nestedReadings returns the first of data, payload or status that is an object,
// or obj itself when none is.
func nestedReadings(obj map[string]any) map[string]any {
	for _, key := range []string{"data", "payload", "status"} {
		if nested, ok := obj[key].(map[string]any); ok {
			return nested
		}
	}

	return obj
}

func flattenExcept(obj map[string]any, skip ...string) map[string]string {
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		if slices.Contains(skip, k) {
			continue
		}
		out[k] = stringValue(v)
	}

	return out
}

func numericOnly(obj map[string]any) map[string]string {
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		if n, ok := v.(json.Number); ok {
			out[k] = n.String()
		}
	}

	return out
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}

		return string(encoded)
	}
}

func describe(label string, fields map[string]string) string {
	if len(fields) == 0 {
		return label + " update"
	}

	keys := slices.Sorted(maps.Keys(fields))
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}

	return label + ": " + strings.Join(pairs, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

func displayable(payload []byte) string {
	return strings.ToValidUTF8(string(payload), "�")
}

// truncate keeps a valid UTF-8 prefix of payload and notes how much was dropped.
func truncate(payload []byte, limit int) string {
	if len(payload) <= limit {
		return displayable(payload)
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(payload[cut]) {
		cut--
	}

	return displayable(payload[:cut]) + "…[truncated " + strconv.Itoa(len(payload)-cut) + " bytes]"
}
