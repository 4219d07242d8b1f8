package model

// ReSchedule is one attempt to move an applicant's appointment to a new
// time slot. Status transitions past PENDING are driven entirely by the
// remote service.
type ReSchedule struct {
	ID            int64   `json:"id"`
	Applicant     int64   `json:"applicant"`
	StartDatetime *string `json:"start_datetime,omitempty"`
	EndDatetime   *string `json:"end_datetime,omitempty"`
	Status        string  `json:"status"`
	Error         *string `json:"error,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ReScheduleCreate is the payload for creating a re-schedule. Status is
// always PENDING at creation time.
type ReScheduleCreate struct {
	Applicant     int64   `json:"applicant"`
	StartDatetime *string `json:"start_datetime,omitempty"`
	EndDatetime   *string `json:"end_datetime,omitempty"`
	Status        string  `json:"status,omitempty"`
}

// ReScheduleUpdate is a partial update. The applicant reference is
// immutable after creation and therefore not part of the payload.
type ReScheduleUpdate struct {
	StartDatetime *string `json:"start_datetime,omitempty"`
	EndDatetime   *string `json:"end_datetime,omitempty"`
	Status        *string `json:"status,omitempty"`
	Error         *string `json:"error,omitempty"`
}
