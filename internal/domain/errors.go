package domain

import "fmt"

// Validation codes reported by the normalizer and the form parser.
const (
	CodeInvalidBillAmount = "missing_or_invalid_bill_amount"
	CodeMissingUsage      = "missing_usage"
	CodeInvalidNumber     = "invalid_number"
	CodeInvalidHorizon    = "invalid_horizon"
	CodeMissingComparison = "missing_comparison_rate"
)

// ValidationError reports missing or malformed user input. It is always
// recoverable by re-entering the value.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Code)
	}
	return e.Code
}

// NewValidationError builds a ValidationError.
func NewValidationError(code, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// PreconditionViolation means the projector was called without a usable
// baseline. It is a programming error in the caller and is never retried.
type PreconditionViolation struct {
	Reason string
}

func (e *PreconditionViolation) Error() string {
	return "precondition violated: " + e.Reason
}
