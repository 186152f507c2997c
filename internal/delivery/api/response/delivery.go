package response

import (
	"vplmon/internal/domain/entity"
	"vplmon/internal/usecase"
)

// ChannelReport is the wire form of a test delivery on one channel.
type ChannelReport struct {
	Channel   string            `json:"channel"`
	Outcome   string            `json:"outcome"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []RecipientResult `json:"results"`
}

// RecipientResult is one recipient's outcome. Recipient is a phone number or an email
// address depending on the channel.
type RecipientResult struct {
	Recipient  string `json:"recipient"`
	Status     string `json:"status"`
	ProviderID string `json:"provider_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

func NewChannelReport(report *usecase.ChannelReport) ChannelReport {
	results := make([]RecipientResult, 0, len(report.Results))
	for _, r := range report.Results {
		results = append(results, newRecipientResult(r))
	}

	return ChannelReport{
		Channel:   string(report.Channel),
		Outcome:   string(report.Outcome),
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Results:   results,
	}
}

func newRecipientResult(r entity.DeliveryResult) RecipientResult {
	return RecipientResult{
		Recipient:  r.Recipient,
		Status:     string(r.Outcome),
		ProviderID: r.ProviderID,
		Error:      r.ErrorDetail,
	}
}
