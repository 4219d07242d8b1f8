package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"visa-admin-backend/internal/form"
	"visa-admin-backend/internal/model"
)

// applicantRequest is the browser form's shape: raw strings, validated by
// the form controller before anything reaches the network.
type applicantRequest struct {
	Name            string `json:"name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	ScheduleDate    string `json:"schedule_date"`
	MinDate         string `json:"min_date"`
	MaxDate         string `json:"max_date"`
	Schedule        string `json:"schedule"`
}

func (r applicantRequest) fill(f *form.ApplicantForm) {
	f.Set("name", r.Name)
	f.Set("last_name", r.LastName)
	f.Set("email", r.Email)
	f.Set("password", r.Password)
	f.Set("confirm_password", r.ConfirmPassword)
	f.Set("schedule_date", r.ScheduleDate)
	f.Set("min_date", r.MinDate)
	f.Set("max_date", r.MaxDate)
	f.Set("schedule", r.Schedule)
}

// ListApplicants handles GET /api/applicants. An optional search query
// filters by name or email.
func (h *Handler) ListApplicants(c *gin.Context) {
	applicants, err := h.applicants.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("search"))); query != "" {
		filtered := make([]model.Applicant, 0, len(applicants))
		for _, a := range applicants {
			if strings.Contains(strings.ToLower(a.Name), query) ||
				strings.Contains(strings.ToLower(a.LastName), query) ||
				strings.Contains(strings.ToLower(a.Email), query) {
				filtered = append(filtered, a)
			}
		}
		applicants = filtered
	}

	c.JSON(http.StatusOK, applicants)
}

// GetApplicant handles GET /api/applicants/:id.
func (h *Handler) GetApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	applicant, err := h.applicants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicant)
}

// CreateApplicant handles POST /api/applicants.
func (h *Handler) CreateApplicant(c *gin.Context) {
	var req applicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f := form.NewApplicantForm(form.ModeCreate, nil)
	req.fill(f)

	payload, ok := f.CreatePayload()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": f.Errors()})
		return
	}

	applicant, err := h.applicants.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, applicant)
}

// UpdateApplicant handles PUT /api/applicants/:id. A blank password in the
// request leaves the stored credential unchanged.
func (h *Handler) UpdateApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req applicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f := form.NewApplicantForm(form.ModeUpdate, nil)
	req.fill(f)

	payload, ok := f.UpdatePayload()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": f.Errors()})
		return
	}

	applicant, err := h.applicants.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicant)
}

// DeleteApplicant handles DELETE /api/applicants/:id.
func (h *Handler) DeleteApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requireConfirmation(c) {
		return
	}

	if err := h.applicants.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TestCredentials handles POST /api/applicants/:id/test-credentials. The
// three-way business outcome is always a 200; only transport failures map
// to an error status.
func (h *Handler) TestCredentials(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	check, err := h.applicants.TestCredentials(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
