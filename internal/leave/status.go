package leave

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

// CanTransition reports whether a leave request may move between two states.
// Pending may be approved or rejected; only Approved may be cancelled.
// Rejected and Cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusCancelled
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(status string) bool {
	return status == StatusRejected || status == StatusCancelled
}
