package model

import "slices"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// transitions is the full lifecycle table. Forward movement only, with
// cancellation reachable from every non-terminal status.
var transitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// ActiveStatuses are the statuses that hold a room: they participate in
// overlap checks and block room/guest deletion.
var ActiveStatuses = []string{StatusConfirmed, StatusCheckedIn}

// CanTransition reports whether the lifecycle table permits moving a booking
// from one status to another.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// IsTerminal reports whether a status permits no further transition.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

// IsActive reports whether a status holds the room for its date range.
func IsActive(status string) bool {
	return slices.Contains(ActiveStatuses, status)
}

// ValidStatus reports whether the value is a known booking status.
func ValidStatus(status string) bool {
	_, ok := transitions[status]

	return ok
}
