package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for rejected status changes.
// Use errors.Is to classify; the concrete InvalidTransitionError carries
// the offending from/to pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError indicates a status change that the transition table
// does not permit. It is caller-correctable, not a system failure.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Processing ──> Shipped ──> Delivered
//	   │
//	   └──> Canceled
//
// Delivered and Canceled are terminal: no outgoing transitions exist, and a
// transition to the current status is never legal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Only orders in this status may be structurally modified or deleted.
	Created

	// Processing indicates the order has been picked up for fulfillment.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled before processing. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "CREATED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// getAllowedTransitions returns the transition table. It is the single source
// of truth for legality of status changes; no code path may authorize a
// transition any other way (in particular, not by rank comparison).
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:    {Processing, Canceled},
		Processing: {Shipped},
		Shipped:    {Delivered},
		Delivered:  {},
		Canceled:   {},
	}
}

// StatusFromString parses a status from its canonical string form, e.g. "CREATED".
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "CREATED".
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Rank returns the ordinal position of the status in the lifecycle
// (Created=1 .. Canceled=5). Rank exists for deterministic ordering in
// reports only; transition legality is decided solely by the transition
// table via CanTransitionTo.
func (s Status) Rank() int {
	return int(s)
}

// CanTransitionTo reports whether the transition table permits moving from
// the receiver to the given status. A transition to the same status is not
// in any allowed-set and is therefore rejected.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition.
//
// Returns:
//   - (to, nil) when the transition table permits the change
//   - (0, *InvalidTransitionError) otherwise
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(to) {
		return 0, NewInvalidTransitionError(s, to)
	}

	return to, nil
}
