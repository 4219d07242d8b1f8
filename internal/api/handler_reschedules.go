package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"visa-admin-backend/internal/form"
	"visa-admin-backend/internal/lifecycle"
	"visa-admin-backend/internal/model"
)

// reScheduleView decorates a re-schedule with its display label and the
// actions a client may offer for it, so clients never need to know the
// status-to-action mapping.
type reScheduleView struct {
	model.ReSchedule
	StatusLabel string            `json:"status_label"`
	Actions     lifecycle.Actions `json:"actions"`
}

func viewOf(rs model.ReSchedule) reScheduleView {
	status := lifecycle.Parse(rs.Status)
	return reScheduleView{
		ReSchedule:  rs,
		StatusLabel: status.Label(),
		Actions:     status.Actions(),
	}
}

func viewsOf(list []model.ReSchedule) []reScheduleView {
	views := make([]reScheduleView, len(list))
	for i, rs := range list {
		views[i] = viewOf(rs)
	}
	return views
}

// ListReSchedules handles GET /api/re-schedules with limit/offset paging
// and an optional status filter applied after the fetch.
func (h *Handler) ListReSchedules(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	list, err := h.reSchedules.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	if want := c.Query("status"); want != "" {
		filtered := make([]model.ReSchedule, 0, len(list))
		for _, rs := range list {
			if rs.Status == want {
				filtered = append(filtered, rs)
			}
		}
		list = filtered
	}

	c.JSON(http.StatusOK, viewsOf(list))
}

// ListReSchedulesByApplicant handles GET /api/applicants/:id/re-schedules.
func (h *Handler) ListReSchedulesByApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.reSchedules.ListByApplicant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewsOf(list))
}

// GetReSchedule handles GET /api/re-schedules/:id.
func (h *Handler) GetReSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rs, err := h.reSchedules.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(rs))
}

type reScheduleRequest struct {
	Applicant     int64  `json:"applicant"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}

// CreateReSchedule handles POST /api/re-schedules. The attempt window is
// mandatory and must be a valid, forward-running range.
func (h *Handler) CreateReSchedule(c *gin.Context) {
	var req reScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f := form.NewReScheduleForm(req.Applicant)
	f.Set("start_datetime", req.StartDatetime)
	f.Set("end_datetime", req.EndDatetime)

	payload, ok := f.CreatePayload()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": f.Errors()})
		return
	}

	rs, err := h.reSchedules.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(rs))
}

// UpdateReSchedule handles PUT /api/re-schedules/:id. Only the attempt
// window may be edited; the applicant reference is immutable.
func (h *Handler) UpdateReSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f := form.NewReScheduleForm(req.Applicant)
	f.Set("start_datetime", req.StartDatetime)
	f.Set("end_datetime", req.EndDatetime)

	payload, ok := f.UpdatePayload()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": f.Errors()})
		return
	}

	rs, err := h.reSchedules.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(rs))
}

// RetryReSchedule handles POST /api/re-schedules/:id/retry. Retrying is
// only offered for attempts that ended in FAILED or NOT_FOUND; anything
// else is a conflict.
func (h *Handler) RetryReSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	existing, err := h.reSchedules.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !lifecycle.Parse(existing.Status).Actions().Retry {
		c.JSON(http.StatusConflict, gin.H{
			"error": "only failed re-schedules can be retried",
		})
		return
	}

	fresh, err := h.reSchedules.Retry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(fresh))
}

// DeleteReSchedule handles DELETE /api/re-schedules/:id.
func (h *Handler) DeleteReSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requireConfirmation(c) {
		return
	}

	if err := h.reSchedules.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetReScheduleLogs handles GET /api/re-schedules/:id/logs. Entries come
// back oldest first so the log reads as a timeline.
func (h *Handler) GetReScheduleLogs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	logs, err := h.reSchedules.Logs(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
