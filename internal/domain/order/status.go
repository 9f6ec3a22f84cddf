package order

import "github.com/BruksfildServices01/letsorder/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusServed    Status = "served"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusServed},
	StatusServed:    {StatusCompleted},
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusServed, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a conflict error when from cannot move to to.
func CheckTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return httperr.ErrConflict(
			"invalid_status_transition",
			"cannot change order status from "+string(from)+" to "+string(to),
		)
	}
	return nil
}
