package estimator

import (
	"errors"
	"fmt"

	"solar-profit/internal/model"
)

var (
	ErrZeroDeviation     = errors.New("deviation must be nonzero")
	ErrNegativeDeviation = errors.New("deviation must not be negative")
)

// DomainError names the input that puts an estimate outside the numeric domain.
type DomainError struct {
	Field string
	Err   error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// CheckDomain reports the first input that makes Compute produce non-finite or
// negative efficiencies. Compute itself never consults it.
//
// A zero improved deviation is accepted: it collapses the window to a point and
// both efficiencies integrate to 0 without evaluating a degenerate density.
func CheckDomain(in model.Inputs) error {
	if in.ImprovedDeviation < 0 {
		return &DomainError{Field: "improved_deviation", Err: ErrNegativeDeviation}
	}
	if in.ImprovedDeviation == 0 {
		return nil
	}
	switch {
	case in.InitialDeviation == 0:
		return &DomainError{Field: "initial_deviation", Err: ErrZeroDeviation}
	case in.InitialDeviation < 0:
		return &DomainError{Field: "initial_deviation", Err: ErrNegativeDeviation}
	}
	return nil
}
