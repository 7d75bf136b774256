package job

// Status is the lifecycle state of a job, derived from the canonical flag
// set (mover assignment, confirmations, completed, conflict). It is never
// stored on its own; Job.Status() computes it on demand so the label can
// not drift from the flags.
type Status int

const (
	StatusUnknown Status = iota
	StatusOpen
	StatusAccepted
	StatusAwaitingPosterConfirm
	StatusAwaitingMoverConfirm
	StatusCompleted
	StatusConflict
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusAccepted:
		return "accepted"
	case StatusAwaitingPosterConfirm:
		return "awaiting_poster_confirm"
	case StatusAwaitingMoverConfirm:
		return "awaiting_mover_confirm"
	case StatusCompleted:
		return "completed"
	case StatusConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Label returns the human-readable description shown to users.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Job needs a mover."
	case StatusAccepted:
		return "Mover accepted job."
	case StatusAwaitingPosterConfirm:
		return "Mover set the job to complete. Waiting for poster confirmation."
	case StatusAwaitingMoverConfirm:
		return "Poster set the job to complete. Waiting for mover confirmation."
	case StatusCompleted:
		return "Job complete."
	case StatusConflict:
		return "A conflict occurred between poster and mover."
	default:
		return "Unknown."
	}
}

// IsTerminal reports whether no further lifecycle transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusConflict
}
