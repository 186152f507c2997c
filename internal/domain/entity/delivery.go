package entity

// DeliveryOutcome is the result for a single recipient.
type DeliveryOutcome string

const (
	OutcomeSuccess DeliveryOutcome = "success"
	OutcomeFailure DeliveryOutcome = "failed"
)

// DeliveryResult is one recipient's outcome of a notification attempt.
type DeliveryResult struct {
	Recipient   string
	Channel     Channel
	Outcome     DeliveryOutcome
	ProviderID  string
	ErrorDetail string
}

// Succeeded reports whether the recipient was reached.
func (r DeliveryResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// BatchOutcome aggregates a channel's per-recipient results.
type BatchOutcome string

const (
	BatchAllSucceeded BatchOutcome = "all_succeeded"
	BatchPartial      BatchOutcome = "partial"
	BatchAllFailed    BatchOutcome = "all_failed"
)

// AggregateOutcome folds per-recipient results. An empty batch counts as failed.
func AggregateOutcome(results []DeliveryResult) BatchOutcome {
	succeeded := 0
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		}
	}

	switch {
	case len(results) > 0 && succeeded == len(results):
		return BatchAllSucceeded
	case succeeded > 0:
		return BatchPartial
	default:
		return BatchAllFailed
	}
}

// CountOutcomes returns the number of successful and failed results.
func CountOutcomes(results []DeliveryResult) (succeeded, failed int) {
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}

	return succeeded, failed
}
