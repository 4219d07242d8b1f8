package model

// Applicant represents a person whose visa appointment is being managed.
// The remote API never returns the stored password; it is write-only.
type Applicant struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	ScheduleDate     *string `json:"schedule_date,omitempty"`
	MinDate          *string `json:"min_date,omitempty"`
	MaxDate          *string `json:"max_date,omitempty"`
	Schedule         *string `json:"schedule,omitempty"`
	ReScheduleStatus string  `json:"re_schedule_status,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ApplicantCreate is the payload for creating an applicant. Password is
// mandatory here and nowhere else.
type ApplicantCreate struct {
	Name         string  `json:"name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	ScheduleDate *string `json:"schedule_date,omitempty"`
	MinDate      *string `json:"min_date,omitempty"`
	MaxDate      *string `json:"max_date,omitempty"`
}

// ApplicantUpdate is a partial update. A nil Password means "leave the
// stored credential untouched"; the field must never be sent as an empty
// string.
type ApplicantUpdate struct {
	Name         *string `json:"name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	ScheduleDate *string `json:"schedule_date,omitempty"`
	MinDate      *string `json:"min_date,omitempty"`
	MaxDate      *string `json:"max_date,omitempty"`
	Schedule     *string `json:"schedule,omitempty"`
}
