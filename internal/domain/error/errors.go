package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeDuplicateExternalID = 4004
	CodeInvalidCredentials  = 4010
	CodeInvalidSignature    = 4011
	CodeMalformedPayload    = 4012
	CodeInvalidRequest      = 4020
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeDuplicateUser       = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeProvider       = 5020
	CodeConfiguration  = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user has too few credits for a spend
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a credit amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNegativeAmount is returned when a balance mutation is handed a negative amount
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidEmail is returned when an email address fails basic validation
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidExternalID is returned when a correlation token is empty
	ErrInvalidExternalID = errors.New("external ID cannot be empty")

	// ErrDuplicateExternalID is returned when a pending purchase reuses a correlation token
	ErrDuplicateExternalID = errors.New("transaction with this external ID already exists")

	// ErrInvalidStatusTransition is returned when a transaction would leave a terminal state
	ErrInvalidStatusTransition = errors.New("invalid transaction status transition")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when registering an email that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidIdentityToken is returned when an external identity token fails verification
	ErrInvalidIdentityToken = errors.New("invalid identity token")

	// ErrInvalidSignature is returned when a webhook signature fails verification
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrMalformedPayload is returned when a webhook payload lacks a correlation token
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrProvider wraps any failure of an external provider (identity, image, payment)
	ErrProvider = errors.New("provider error")

	// ErrConfiguration is returned when a required secret or credential is missing
	ErrConfiguration = errors.New("missing required configuration")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateExternalID):
		return CodeDuplicateExternalID
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidIdentityToken):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrMalformedPayload):
		return CodeMalformedPayload
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrProvider):
		return CodeProvider
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidExternalID):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Cost        int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, e.Cost, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"cost":            e.Cost,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, cost, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Cost:        cost,
		CurrBalance: currentBalance,
	}
}

// ProviderError wraps a failure of an external collaborator
type ProviderError struct {
	Provider  string // "identity", "image", "payment"
	Operation string
	Err       error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider failed during %s: %v", e.Provider, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrProvider
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "provider_error",
		"provider":   e.Provider,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeProvider,
	}
}

// NewProviderError creates a new detailed provider error
func NewProviderError(provider, operation string, err error) error {
	return &ProviderError{Provider: provider, Operation: operation, Err: err}
}

// WebhookError carries context for webhook processing failures
type WebhookError struct {
	ExternalID string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *WebhookError) Error() string {
	return fmt.Sprintf("webhook processing failed (token: %q): %s - %v", e.ExternalID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *WebhookError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WebhookError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "webhook_error",
		"external_id": e.ExternalID,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewWebhookError creates a detailed webhook error
func NewWebhookError(externalID, reason string, err error) error {
	return &WebhookError{ExternalID: externalID, Reason: reason, Err: err}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsDuplicateExternalIDError checks if the error is a duplicate correlation token error
func IsDuplicateExternalIDError(err error) bool {
	return errors.Is(err, ErrDuplicateExternalID)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsProviderError checks if the error came from an external collaborator
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProvider)
}
