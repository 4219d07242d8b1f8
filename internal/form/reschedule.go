package form

import (
	"visa-admin-backend/internal/lifecycle"
	"visa-admin-backend/internal/model"
)

// ReScheduleForm is the controller behind the "Add Re-Schedule" modal. The
// attempt window is required here even though the API accepts records
// without one; the scheduler never picks up a re-schedule with no start.
type ReScheduleForm struct {
	*Form
	applicantID int64
}

func NewReScheduleForm(applicantID int64) *ReScheduleForm {
	f := New().
		Add("start_datetime", "", All(
			Required("Start date and time is required"),
			Datetime("Invalid date and time"),
		)).
		Add("end_datetime", "", All(
			Required("End date and time is required"),
			Datetime("Invalid date and time"),
			DatetimeAfter("start_datetime", "End date must be after start date"),
		))

	f.Revalidates("start_datetime", "end_datetime")

	return &ReScheduleForm{Form: f, applicantID: applicantID}
}

// CreatePayload validates the form and builds the creation payload. New
// attempts always start out PENDING; every later status is the server's
// call.
func (f *ReScheduleForm) CreatePayload() (model.ReScheduleCreate, bool) {
	if f.applicantID <= 0 || !f.Validate() {
		return model.ReScheduleCreate{}, false
	}
	return model.ReScheduleCreate{
		Applicant:     f.applicantID,
		StartDatetime: optional(f.Value("start_datetime")),
		EndDatetime:   optional(f.Value("end_datetime")),
		Status:        string(lifecycle.StatusPending),
	}, true
}

// UpdatePayload validates the window and builds the partial update. Only
// the window is editable after creation; status and applicant stay with
// the server.
func (f *ReScheduleForm) UpdatePayload() (model.ReScheduleUpdate, bool) {
	if !f.Validate() {
		return model.ReScheduleUpdate{}, false
	}
	return model.ReScheduleUpdate{
		StartDatetime: optional(f.Value("start_datetime")),
		EndDatetime:   optional(f.Value("end_datetime")),
	}, true
}
