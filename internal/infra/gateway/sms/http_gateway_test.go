package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayForServer(t *testing.T, handler http.HandlerFunc) *httpGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.SMSGateway.Endpoint = server.URL + "/send-sms"

	return NewHTTPGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*httpGateway)
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestHTTPGateway_PostsRequestBody(t *testing.T) {
	var got SendRequest
	gw := newGatewayForServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		reply(http.StatusOK, `{"message":"SMS sent successfully","results":["SM1"]}`)(w, r)
	})

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	results, err := gw.SendSMS(context.Background(), []string{"+15551230000"}, "RED Alert: Door open", at)
	require.NoError(t, err)

	assert.Equal(t, SendRequest{Phones: []string{"+15551230000"}, Message: "RED Alert: Door open", Timestamp: "2024-05-01T12:00:00Z"}, got)
	assert.Equal(t, []entity.DeliveryResult{{Recipient: "+15551230000", Channel: entity.ChannelSMS, Outcome: entity.OutcomeSuccess, ProviderID: "SM1"}}, results)
}

func TestHTTPGateway_MultiStatus(t *testing.T) {
	gw := newGatewayForServer(t, reply(http.StatusMultiStatus,
		`{"message":"Some messages failed","results":[{"phone":"+15551230000","status":"success","sid":"SM1"},{"phone":"+1bad","status":"failed","error":"invalid phone"}]}`))

	results, err := gw.SendSMS(context.Background(), []string{"+15551230000", "+1bad", "+15551230002"}, "Test", time.Now())
	require.NoError(t, err)

	assert.Equal(t, []entity.DeliveryResult{
		{Recipient: "+15551230000", Channel: entity.ChannelSMS, Outcome: entity.OutcomeSuccess, ProviderID: "SM1"},
		{Recipient: "+1bad", Channel: entity.ChannelSMS, Outcome: entity.OutcomeFailure, ErrorDetail: "invalid phone"},
		{Recipient: "+15551230002", Channel: entity.ChannelSMS, Outcome: entity.OutcomeFailure, ErrorDetail: "no result returned"},
	}, results)
	assert.Equal(t, entity.BatchPartial, entity.AggregateOutcome(results))
}

func TestHTTPGateway_ErrorStatusFailsEveryPhone(t *testing.T) {
	gw := newGatewayForServer(t, reply(http.StatusInternalServerError, `{"message":"Twilio configuration missing"}`))

	results, err := gw.SendSMS(context.Background(), []string{"+15551230000", "+15551230001"}, "Test", time.Now())
	require.NoError(t, err)

	for _, r := range results {
		assert.Equal(t, entity.OutcomeFailure, r.Outcome)
		assert.Equal(t, "Twilio configuration missing", r.ErrorDetail)
	}
}

func TestHTTPGateway_UnreachableEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMSGateway.Endpoint = "http://127.0.0.1:1/send-sms"
	gw := NewHTTPGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := gw.SendSMS(context.Background(), []string{"+15551230000"}, "Test", time.Now())

	assert.Error(t, err)
}
