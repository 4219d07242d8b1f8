package model

// Log states as reported by the remote service.
const (
	LogStateError   = "ERROR"
	LogStateWarning = "WARNING"
	LogStateInfo    = "INFO"
	LogStateSuccess = "SUCCESS"
)

// ReScheduleLog is one timestamped diagnostic entry produced during a
// re-schedule attempt. Append-only; the client never updates or deletes one.
type ReScheduleLog struct {
	ID         int64  `json:"id"`
	ReSchedule int64  `json:"re_schedule"`
	State      string `json:"state"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
