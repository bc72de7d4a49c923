package booking

import (
	"fmt"
	"strings"
)

// SlotUnavailableError signals a booking attempt on a date or time the
// provider's window rejects.
type SlotUnavailableError struct {
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slotUnavailable: %s", e.Reason)
}

// IncompleteProfileError blocks a gated action until the provider finishes
// onboarding. Missing carries the field vocabulary from the validator.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("incompleteProfile: missing %s", strings.Join(e.Missing, ", "))
}

// InvalidTransitionError signals a booking status change the lifecycle
// does not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalidTransition: %s -> %s", e.From, e.To)
}
