package payment

import "strings"

// Outcome is the normalized business result of a webhook event
type Outcome int

// Webhook outcomes
const (
	// OutcomeUnknown means the provider status maps to neither success nor
	// failure; the event is acknowledged without mutation
	OutcomeUnknown Outcome = iota
	// OutcomeSuccess means payment completed and credits must be applied
	OutcomeSuccess
	// OutcomeFailure means payment failed or was cancelled
	OutcomeFailure
)

// successStatuses and failureStatuses normalize the status vocabulary across
// provider variants. Comparison is case-insensitive.
var (
	successStatuses = map[string]struct{}{
		"completed":                  {},
		"checkout.session.completed": {},
		"paid":                       {},
		"approved":                   {},
		"success":                    {},
		"succeeded":                  {},
	}
	failureStatuses = map[string]struct{}{
		"failed":                   {},
		"failure":                  {},
		"cancelled":                {},
		"canceled":                 {},
		"declined":                 {},
		"expired":                  {},
		"checkout.session.expired": {},
	}
)

// ClassifyStatus maps a provider's status string to a normalized outcome
func ClassifyStatus(status string) Outcome {
	s := strings.ToLower(strings.TrimSpace(status))
	if _, ok := successStatuses[s]; ok {
		return OutcomeSuccess
	}
	if _, ok := failureStatuses[s]; ok {
		return OutcomeFailure
	}
	return OutcomeUnknown
}
