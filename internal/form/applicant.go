package form

import (
	"strings"

	"visa-admin-backend/internal/model"
)

// Mode selects between the creation form and the edit form.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// ApplicantForm is the controller behind the applicant create/edit modal.
// In update mode the password fields may be left empty, which leaves the
// stored credential untouched.
type ApplicantForm struct {
	*Form
	mode Mode
}

// NewApplicantForm builds the form. existing seeds the fields in update
// mode and may be nil in create mode. The schedule_date, min_date and
// max_date fields are optional in both modes; format and range rules apply
// only when they are filled in.
func NewApplicantForm(mode Mode, existing *model.Applicant) *ApplicantForm {
	passwordValidator := Optional(MinLen(8, "Password must be at least 8 characters"))
	if mode == ModeCreate {
		passwordValidator = All(
			Required("Password is required"),
			MinLen(8, "Password must be at least 8 characters"),
		)
	}

	f := New().
		Add("name", "", Required("First name is required")).
		Add("last_name", "", Required("Last name is required")).
		Add("email", "", All(Required("Email is required"), Email("Invalid email format"))).
		Add("password", "", passwordValidator).
		Add("confirm_password", "", All(
			RequiredWith("password", "Please confirm the password"),
			Matches("password", "Passwords do not match"),
		)).
		Add("schedule_date", "", Optional(Date("Invalid date"))).
		Add("min_date", "", Optional(Date("Invalid date"))).
		Add("max_date", "", All(
			Optional(Date("Invalid date")),
			DateAfter("min_date", "Max date must be after min date"),
		)).
		Add("schedule", "", nil)

	f.Revalidates("password", "confirm_password")
	f.Revalidates("min_date", "max_date")

	if existing != nil {
		f.Set("name", existing.Name)
		f.Set("last_name", existing.LastName)
		f.Set("email", existing.Email)
		f.Set("schedule_date", deref(existing.ScheduleDate))
		f.Set("min_date", deref(existing.MinDate))
		f.Set("max_date", deref(existing.MaxDate))
		f.Set("schedule", deref(existing.Schedule))
	}

	return &ApplicantForm{Form: f, mode: mode}
}

// Mode returns which submission the form will produce.
func (f *ApplicantForm) Mode() Mode {
	return f.mode
}

// CreatePayload validates the form and builds the creation payload.
// Password is mandatory in create mode and always sent.
func (f *ApplicantForm) CreatePayload() (model.ApplicantCreate, bool) {
	if f.mode != ModeCreate || !f.Validate() {
		return model.ApplicantCreate{}, false
	}
	return model.ApplicantCreate{
		Name:         strings.TrimSpace(f.Value("name")),
		LastName:     strings.TrimSpace(f.Value("last_name")),
		Email:        strings.TrimSpace(f.Value("email")),
		Password:     f.Value("password"),
		ScheduleDate: optional(f.Value("schedule_date")),
		MinDate:      optional(f.Value("min_date")),
		MaxDate:      optional(f.Value("max_date")),
	}, true
}

// UpdatePayload validates the form and builds the partial update. A blank
// password is stripped from the payload entirely; an empty-string password
// is never sent.
func (f *ApplicantForm) UpdatePayload() (model.ApplicantUpdate, bool) {
	if f.mode != ModeUpdate || !f.Validate() {
		return model.ApplicantUpdate{}, false
	}
	u := model.ApplicantUpdate{
		Name:         optional(strings.TrimSpace(f.Value("name"))),
		LastName:     optional(strings.TrimSpace(f.Value("last_name"))),
		Email:        optional(strings.TrimSpace(f.Value("email"))),
		ScheduleDate: optional(f.Value("schedule_date")),
		MinDate:      optional(f.Value("min_date")),
		MaxDate:      optional(f.Value("max_date")),
		Schedule:     optional(f.Value("schedule")),
	}
	if pw := f.Value("password"); pw != "" {
		u.Password = &pw
	}
	return u, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
