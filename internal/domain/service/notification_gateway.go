package service

import (
	"context"
	"time"

	"vplmon/internal/domain/entity"
)

// SMSGateway delivers one text message to a batch of phone numbers.
type SMSGateway interface {
	// SendSMS returns one result per phone. err is set only when the batch could not be attempted at all.
	SendSMS(ctx context.Context, phones []string, message string, timestamp time.Time) ([]entity.DeliveryResult, error)
}

// EmailRequest is one outbound email.
type EmailRequest struct {
	ToEmail   string
	Subject   string
	Message   string
	Timestamp time.Time
}

// EmailGateway delivers a single email.
type EmailGateway interface {
	SendEmail(ctx context.Context, req EmailRequest) error
}

// SMSProvider is the carrier API behind the send-sms function.
type SMSProvider interface {
	// Configured reports which credentials are present.
	Configured() ProviderConfigStatus

	// Send delivers body to a single phone and returns the provider message ID.
	Send(ctx context.Context, phone, body string) (string, error)
}

// ProviderConfigStatus reports which provider credentials are set.
type ProviderConfigStatus struct {
	HasSID   bool `json:"hasSID"`
	HasToken bool `json:"hasToken"`
	HasPhone bool `json:"hasPhone"`
}

// Ready reports whether every credential is present.
func (s ProviderConfigStatus) Ready() bool {
	return s.HasSID && s.HasToken && s.HasPhone
}
