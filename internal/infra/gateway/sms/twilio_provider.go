package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
)

const defaultTwilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioError is the error body of the Twilio REST API.
type TwilioError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

func (e *TwilioError) Error() string {
	return fmt.Sprintf("twilio error %d (status %d): %s", e.Code, e.Status, e.Message)
}

// twilioProvider sends single messages through the Twilio Messages API.
type twilioProvider struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioProvider creates the carrier used by the send-sms function.
func NewTwilioProvider(cfg *config.Config) service.SMSProvider {
	baseURL := strings.TrimRight(cfg.Twilio.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}

	return &twilioProvider{
		accountSID: cfg.Twilio.AccountSID,
		authToken:  cfg.Twilio.AuthToken,
		from:       cfg.Twilio.PhoneNumber,
		baseURL:    baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (p *twilioProvider) Configured() service.ProviderConfigStatus {
	return service.ProviderConfigStatus{
		HasSID:   p.accountSID != "",
		HasToken: p.authToken != "",
		HasPhone: p.from != "",
	}
}

// Send returns the message SID assigned by Twilio.
func (p *twilioProvider) Send(ctx context.Context, phone, body string) (string, error) {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", p.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", p.baseURL, url.PathEscape(p.accountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "post twilio message")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errors.Wrap(err, "read twilio response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		twErr := &TwilioError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, twErr); jsonErr != nil || twErr.Message == "" {
			twErr.Message = http.StatusText(resp.StatusCode)
		}

		return "", twErr
	}

	var created struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return "", errors.Wrap(err, "decode twilio response")
	}

	return created.SID, nil
}
