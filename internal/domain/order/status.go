package order

import (
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

// Status is the lifecycle state of an order
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions holds the permitted next states. DELIVERED and CANCELLED are
// terminal; same-state and backward transitions are never allowed.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the move from s to next is permitted
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns a StatusTransitionError naming both states when
// the move is not permitted.
func ValidateTransition(from, to Status) error {
	if !to.IsValid() {
		return domainerr.NewValidation("order_status", "unknown status %q", to)
	}
	if !from.CanTransitionTo(to) {
		return domainerr.NewStatusTransition(string(from), string(to))
	}
	return nil
}
