package lifecycle

// Status is the closed set of re-schedule states the client understands,
// plus an explicit unknown fallback. Transitions past PENDING are driven by
// the remote service; the client never advances a status locally.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusLoginPending Status = "LOGIN_PENDING"
	StatusProcessing   Status = "PROCESSING"
	StatusScheduled    Status = "SCHEDULED"
	StatusCompleted    Status = "COMPLETED"
	StatusFailed       Status = "FAILED"
	StatusNotFound     Status = "NOT_FOUND"

	// StatusUnknown is the fallback for any status value the remote service
	// introduces that this client does not recognize yet.
	StatusUnknown Status = "UNKNOWN"
)

// Parse maps a raw remote status string onto the closed set. Unrecognized
// values map to StatusUnknown rather than failing.
func Parse(raw string) Status {
	switch Status(raw) {
	case StatusPending, StatusLoginPending, StatusProcessing,
		StatusScheduled, StatusCompleted, StatusFailed, StatusNotFound:
		return Status(raw)
	default:
		return StatusUnknown
	}
}

// Terminal reports whether the attempt has finished, successfully or not.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusNotFound:
		return true
	default:
		return false
	}
}

// Actions is the set of affordances a view may offer for a re-schedule.
type Actions struct {
	Retry    bool `json:"retry"`
	ViewLogs bool `json:"view_logs"`
	Delete   bool `json:"delete"`
}

// Actions returns the allowed actions for a status. The mapping is total:
// every status, including unknown ones, keeps deletion available so a new
// remote status can never strand a record.
func (s Status) Actions() Actions {
	switch s {
	case StatusPending, StatusLoginPending:
		// No log activity has started yet.
		return Actions{Delete: true}
	case StatusProcessing, StatusScheduled, StatusCompleted:
		return Actions{ViewLogs: true, Delete: true}
	case StatusFailed, StatusNotFound:
		return Actions{Retry: true, ViewLogs: true, Delete: true}
	default:
		return Actions{Delete: true}
	}
}

// Label returns the human-readable form of a status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusLoginPending:
		return "Login Pending"
	case StatusProcessing:
		return "Processing"
	case StatusScheduled:
		return "Scheduled"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	case StatusNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
