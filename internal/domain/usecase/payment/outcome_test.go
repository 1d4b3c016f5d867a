package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status  string
		outcome Outcome
	}{
		{"completed", OutcomeSuccess},
		{"checkout.session.completed", OutcomeSuccess},
		{"paid", OutcomeSuccess},
		{"approved", OutcomeSuccess},
		{"success", OutcomeSuccess},
		{"succeeded", OutcomeSuccess},
		{"COMPLETED", OutcomeSuccess},
		{"  Paid  ", OutcomeSuccess},
		{"failed", OutcomeFailure},
		{"failure", OutcomeFailure},
		{"cancelled", OutcomeFailure},
		{"canceled", OutcomeFailure},
		{"declined", OutcomeFailure},
		{"expired", OutcomeFailure},
		{"checkout.session.expired", OutcomeFailure},
		{"Failed", OutcomeFailure},
		{"", OutcomeUnknown},
		{"pending", OutcomeUnknown},
		{"checkout.session.async_payment_processing", OutcomeUnknown},
		{"garbage", OutcomeUnknown},
	}

	for _, tt := range tests {
		name := tt.status
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.outcome, ClassifyStatus(tt.status))
		})
	}
}
