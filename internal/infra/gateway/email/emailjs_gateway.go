// Package email sends alert and log-export mail through the EmailJS REST API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
)

const (
	defaultBaseURL = "https://api.emailjs.com/api/v1.0"
	fromName       = "VPL Monitoring"
)

type templateParams struct {
	ToEmail   string `json:"to_email"`
	FromName  string `json:"from_name"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	ReplyTo   string `json:"reply_to"`
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams templateParams `json:"template_params"`
}

type emailJSGateway struct {
	cfg        config.EmailJSConfig
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEmailJSGateway creates the email gateway of the configured EmailJS account.
func NewEmailJSGateway(cfg *config.Config, logger *slog.Logger) service.EmailGateway {
	baseURL := strings.TrimRight(cfg.EmailJS.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &emailJSGateway{
		cfg:      cfg.EmailJS,
		endpoint: baseURL + "/email/send",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

func (g *emailJSGateway) SendEmail(ctx context.Context, req service.EmailRequest) error {
	if g.cfg.ServiceID == "" || g.cfg.TemplateID == "" || g.cfg.UserID == "" {
		return errors.New("emailjs account is not configured")
	}

	timestamp := req.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:   g.cfg.ServiceID,
		TemplateID:  g.cfg.TemplateID,
		UserID:      g.cfg.UserID,
		AccessToken: g.cfg.AccessToken,
		TemplateParams: templateParams{
			ToEmail:   req.ToEmail,
			FromName:  fromName,
			Subject:   req.Subject,
			Message:   req.Message,
			Timestamp: timestamp.UTC().Format(time.RFC3339),
			ReplyTo:   req.ToEmail,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "post emailjs send")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("emailjs responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	g.logger.Debug("Email sent", slog.String("to", req.ToEmail), slog.String("subject", req.Subject))

	return nil
}
