// Package sms contains the SMS gateway client and the carrier provider behind the send-sms function.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
)

const maxResponseBytes = 1 << 20

// SendRequest is the body of POST /send-sms.
type SendRequest struct {
	Phones    []string `json:"phones"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
}

// SendResponse is the body returned by POST /send-sms. Results holds provider SIDs on 200
// and per-phone entries otherwise.
type SendResponse struct {
	Message string          `json:"message"`
	Results json.RawMessage `json:"results,omitempty"`
}

type phoneResult struct {
	Phone  string `json:"phone"`
	Status string `json:"status"`
	SID    string `json:"sid"`
	Error  string `json:"error"`
}

// httpGateway posts SMS batches to the send-sms function.
type httpGateway struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGateway creates the SMS gateway client of the configured endpoint.
func NewHTTPGateway(cfg *config.Config, logger *slog.Logger) service.SMSGateway {
	return &httpGateway{
		endpoint: cfg.SMSGateway.Endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (g *httpGateway) SendSMS(ctx context.Context, phones []string, message string, timestamp time.Time) ([]entity.DeliveryResult, error) {
	if g.endpoint == "" {
		return nil, errors.New("sms gateway endpoint is not configured")
	}

	body, err := json.Marshal(SendRequest{
		Phones:    phones,
		Message:   message,
		Timestamp: timestamp.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "post send-sms")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read send-sms response")
	}

	var decoded SendResponse
	// A non-JSON error page still yields per-phone failures below.
	_ = json.Unmarshal(raw, &decoded)

	g.logger.Debug("SMS gateway responded",
		slog.Int("status", resp.StatusCode),
		slog.Int("phones", len(phones)),
	)

	switch resp.StatusCode {
	case http.StatusOK:
		return successResults(phones, decoded.Results), nil
	case http.StatusMultiStatus:
		return perPhoneResults(phones, decoded.Results, "no result returned"), nil
	default:
		detail := decoded.Message
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}

		return perPhoneResults(phones, decoded.Results, detail), nil
	}
}

func successResults(phones []string, raw json.RawMessage) []entity.DeliveryResult {
	var sids []string
	_ = json.Unmarshal(raw, &sids)

	results := make([]entity.DeliveryResult, 0, len(phones))
	for i, phone := range phones {
		r := entity.DeliveryResult{Recipient: phone, Channel: entity.ChannelSMS, Outcome: entity.OutcomeSuccess}
		if i < len(sids) {
			r.ProviderID = sids[i]
		}
		results = append(results, r)
	}

	return results
}

// perPhoneResults matches reported entries to the requested phones. Phones without an
// entry fail with fallback.
func perPhoneResults(phones []string, raw json.RawMessage, fallback string) []entity.DeliveryResult {
	var reported []phoneResult
	_ = json.Unmarshal(raw, &reported)

	byPhone := make(map[string]phoneResult, len(reported))
	for _, r := range reported {
		byPhone[r.Phone] = r
	}

	results := make([]entity.DeliveryResult, 0, len(phones))
	for _, phone := range phones {
		r := entity.DeliveryResult{Recipient: phone, Channel: entity.ChannelSMS, Outcome: entity.OutcomeFailure, ErrorDetail: fallback}
		if reply, ok := byPhone[phone]; ok {
			r.ProviderID = reply.SID
			if reply.Error != "" {
				r.ErrorDetail = reply.Error
			}
			if entity.DeliveryOutcome(reply.Status) == entity.OutcomeSuccess {
				r.Outcome, r.ErrorDetail = entity.OutcomeSuccess, ""
			}
		}
		results = append(results, r)
	}

	return results
}
