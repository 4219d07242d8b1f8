package remote

import (
	"context"
	"fmt"
	"net/http"

	"visa-admin-backend/internal/model"
)

// ListReScheduleLogs returns the append-only diagnostic log of one
// re-schedule attempt.
func (c *Client) ListReScheduleLogs(ctx context.Context, reScheduleID int64) ([]model.ReScheduleLog, error) {
	var logs []model.ReScheduleLog
	path := fmt.Sprintf("/api/re-schedule-logs/%d", reScheduleID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
