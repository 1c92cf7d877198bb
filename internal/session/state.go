// Package session holds the interactive calculator's current baseline as an
// immutable value. Each recalculation yields a new State; nothing is shared.
package session

import (
	"errors"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/domain"
)

// ErrNoBaseline is returned by Derive before a bill has been entered.
var ErrNoBaseline = errors.New("no baseline calculated yet")

// State is the calculator's view of the world.
type State struct {
	baseline *domain.Baseline
	input    domain.BillingInput
}

// New returns an empty state.
func New() State { return State{} }

// Recalculate normalizes in and returns a state holding the new baseline.
// On a validation error the receiver is returned unchanged with the error.
func (s State) Recalculate(in domain.BillingInput) (State, error) {
	b, err := calculation.Normalize(in)
	if err != nil {
		return s, err
	}
	return State{baseline: &b, input: in}, nil
}

// Baseline returns the current baseline, if any.
func (s State) Baseline() (domain.Baseline, bool) {
	if s.baseline == nil {
		return domain.Baseline{}, false
	}
	return *s.baseline, true
}

// Input returns the billing input that produced the current baseline.
func (s State) Input() domain.BillingInput { return s.input }

// HasBaseline reports whether a bill has been normalized.
func (s State) HasBaseline() bool { return s.baseline != nil }

// Derive projects the current baseline with params.
func (s State) Derive(params domain.ProjectionParams) (domain.Projection, error) {
	if s.baseline == nil {
		return domain.Projection{}, ErrNoBaseline
	}
	return calculation.Project(*s.baseline, params)
}

// DeriveStrict is Derive for callers that need a comparison rate to proceed.
func (s State) DeriveStrict(params domain.ProjectionParams) (domain.Projection, error) {
	if !params.HasComparison() {
		return domain.Projection{}, domain.NewValidationError(domain.CodeMissingComparison, "comparison_rate",
			"Enter a positive comparison rate to project savings.")
	}
	return s.Derive(params)
}
