package impl

import (
	"strings"
	"testing"
	"time"

	"vplmon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier() *classifier {
	return NewClassifier(ClassifierParams{Config: newTestConfig(), Logger: newDiscardLogger()}).(*classifier)
}

func msgOn(topic, payload string) entity.Message {
	return entity.Message{Topic: topic, Payload: []byte(payload), ReceivedAt: time.Now()}
}

func TestClassifier_JSONAlert(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify(msgOn("usf/messages", `{"type":"red","message":"Door open","timestamp":"t1"}`))

	require.NotNil(t, got)
	assert.Equal(t, entity.CategoryAlertRed, got.Category)
	assert.Equal(t, "Door open", got.DisplayText)
	assert.Equal(t, map[string]string{"message": "Door open", "timestamp": "t1"}, got.Structured())
	require.NotNil(t, got.Source)
	assert.Equal(t, "usf/messages", got.Source.Topic)
}

func TestClassifier_TrailingDataFallsBackToText(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		payload string
		want    entity.Category
	}{
		{name: "trailing text", payload: `{"type":"red","message":"Door open"} not json`, want: entity.CategoryGeneral},
		{name: "second object", payload: `{"type":"status"}{"type":"red"}`, want: entity.CategoryGeneral},
		{name: "trailing alert word", payload: `{"type":"green"} amber alert`, want: entity.CategoryAlertAmber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(msgOn("usf/messages", tt.payload))

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.payload, got.DisplayText)
			assert.Nil(t, got.Structured())
		})
	}
}

func TestClassifier_JSONTypes(t *testing.T) {
	tests := []struct {
		name        string
		topic       string
		payload     string
		wantCat     entity.Category
		wantDisplay string
	}{
		{name: "amber is case insensitive", payload: `{"type":" AMBER ","message":"Low battery"}`, wantCat: entity.CategoryAlertAmber, wantDisplay: "Low battery"},
		{name: "green", payload: `{"type":"green","message":"Normal"}`, wantCat: entity.CategoryAlertGreen, wantDisplay: "Normal"},
		{name: "command message", payload: `{"type":"command","message":"COMMAND:UP"}`, wantCat: entity.CategoryCommand, wantDisplay: "COMMAND:UP"},
		{name: "command data", payload: `{"type":"command","data":{"command":"STOP"}}`, wantCat: entity.CategoryCommand, wantDisplay: "STOP"},
		{name: "unknown type general", payload: `{"type":"hello","message":"hi"}`, wantCat: entity.CategoryGeneral, wantDisplay: "hi"},
		{name: "no type falls back to topic", topic: "usf/logs/alerts", payload: `{"message":"Overload amber"}`, wantCat: entity.CategoryAlertAmber, wantDisplay: "Overload amber"},
		{name: "explicit type beats topic", topic: "usf/logs/alerts", payload: `{"type":"command","message":"DOWN"}`, wantCat: entity.CategoryCommand, wantDisplay: "DOWN"},
		{name: "alert topic uses severity field", topic: "usf/logs/alerts", payload: `{"severity":"green","message":"ok"}`, wantCat: entity.CategoryAlertGreen, wantDisplay: "ok"},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := tt.topic
			if topic == "" {
				topic = "usf/messages"
			}

			got := c.Classify(msgOn(topic, tt.payload))

			assert.Equal(t, tt.wantCat, got.Category)
			assert.Equal(t, tt.wantDisplay, got.DisplayText)
		})
	}
}

func TestClassifier_StatusAndTelemetry(t *testing.T) {
	c := newTestClassifier()

	status := c.Classify(msgOn("usf/messages", `{"type":"status","data":{"state":"idle","door":"closed","floor":2}}`))
	assert.Equal(t, entity.CategoryStatus, status.Category)
	assert.Equal(t, map[string]string{"state": "idle", "door": "closed", "floor": "2"}, status.Structured())
	assert.Equal(t, "Status: door=closed, floor=2, state=idle", status.DisplayText)

	flat := c.Classify(msgOn("usf/status", `{"state":"moving"}`))
	assert.Equal(t, entity.CategoryStatus, flat.Category)
	assert.Equal(t, map[string]string{"state": "moving"}, flat.Structured())

	telemetry := c.Classify(msgOn("usf/messages", `{"type":"telemetry","payload":{"speed":0.25,"load":120,"unit":"kg"}}`))
	assert.Equal(t, entity.CategoryTelemetry, telemetry.Category)
	assert.Equal(t, map[string]string{"speed": "0.25", "load": "120"}, telemetry.Structured())
}

func TestClassifier_TextHeuristics(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		payload string
		want    entity.Category
	}{
		{name: "command marker", payload: "> UP", want: entity.CategoryCommand},
		{name: "command prefix lowercase", payload: "command:stop", want: entity.CategoryCommand},
		{name: "echo marker", payload: "ECHO: brake", want: entity.CategoryCommand},
		{name: "alert defaults to red", payload: "ALERT: motor fault", want: entity.CategoryAlertRed},
		{name: "amber alert", payload: "amber alert - low battery", want: entity.CategoryAlertAmber},
		{name: "red inside a word is not a severity", payload: "alert: user entered green zone", want: entity.CategoryAlertGreen},
		{name: "plain text", payload: "Platform reached floor 2", want: entity.CategoryGeneral},
		{name: "plain text on command topic", topic: "usf/logs/command", payload: "up", want: entity.CategoryCommand},
		{name: "plain text on alert topic", topic: "usf/logs/alerts", payload: "obstruction detected", want: entity.CategoryAlertRed},
		{name: "json array is text", payload: `["alert"]`, want: entity.CategoryAlertRed},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := tt.topic
			if topic == "" {
				topic = "usf/messages"
			}

			got := c.Classify(msgOn(topic, tt.payload))

			assert.Equal(t, tt.want, got.Category)
			assert.Nil(t, got.Structured())
		})
	}
}

func TestClassifier_MalformedInputNeverPanics(t *testing.T) {
	c := newTestClassifier()

	payloads := []string{
		`{"type":`,
		`{"type":"red","message":`,
		`{{{{`,
		"\xff\xfe\xfd",
		`{"type":null}`,
		`{"type":["red"]}`,
		`{"type":"telemetry","data":[1,2,3]}`,
		`null`,
	}

	for _, payload := range payloads {
		assert.NotPanics(t, func() {
			got := c.Classify(msgOn("usf/messages", payload))
			require.NotNil(t, got)
		}, payload)
	}
}

func TestClassifier_EmptyAndOversizedPayloads(t *testing.T) {
	c := newTestClassifier()

	empty := c.Classify(msgOn("usf/messages", "   "))
	assert.Equal(t, entity.CategoryUnknown, empty.Category)
	assert.Equal(t, emptyPayloadText, empty.DisplayText)

	big := c.Classify(msgOn("usf/messages", `{"type":"red","message":"`+strings.Repeat("x", 2048)+`"}`))
	assert.Equal(t, entity.CategoryUnknown, big.Category)
	assert.Contains(t, big.DisplayText, "…[truncated ")
	assert.Less(t, len(big.DisplayText), 400)
}

func TestClassifier_StructuredIsACopy(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify(msgOn("usf/messages", `{"type":"red","message":"x"}`))
	fields := got.Structured()
	fields["message"] = "changed"

	value, ok := got.Field("message")
	assert.True(t, ok)
	assert.Equal(t, "x", value)
}
