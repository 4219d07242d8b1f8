package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"visa-admin-backend/internal/model"
)

// ListReSchedules returns re-schedules with limit/offset paging.
func (c *Client) ListReSchedules(ctx context.Context, limit, offset int) ([]model.ReSchedule, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var reSchedules []model.ReSchedule
	if err := c.do(ctx, http.MethodGet, "/api/re-schedules/", query, nil, &reSchedules); err != nil {
		return nil, err
	}
	return reSchedules, nil
}

// ListReSchedulesByApplicant returns the re-schedules belonging to one
// applicant.
func (c *Client) ListReSchedulesByApplicant(ctx context.Context, applicantID int64, limit int) ([]model.ReSchedule, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var reSchedules []model.ReSchedule
	path := fmt.Sprintf("/api/re-schedules/applicant/%d", applicantID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &reSchedules); err != nil {
		return nil, err
	}
	return reSchedules, nil
}

func (c *Client) GetReSchedule(ctx context.Context, id int64) (model.ReSchedule, error) {
	var rs model.ReSchedule
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/re-schedules/%d", id), nil, nil, &rs); err != nil {
		return model.ReSchedule{}, err
	}
	return rs, nil
}

func (c *Client) CreateReSchedule(ctx context.Context, payload model.ReScheduleCreate) (model.ReSchedule, error) {
	var rs model.ReSchedule
	if err := c.do(ctx, http.MethodPost, "/api/re-schedules/", nil, payload, &rs); err != nil {
		return model.ReSchedule{}, err
	}
	return rs, nil
}

func (c *Client) UpdateReSchedule(ctx context.Context, id int64, payload model.ReScheduleUpdate) (model.ReSchedule, error) {
	var rs model.ReSchedule
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/re-schedules/%d", id), nil, payload, &rs); err != nil {
		return model.ReSchedule{}, err
	}
	return rs, nil
}

func (c *Client) DeleteReSchedule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/re-schedules/%d", id), nil, nil, nil)
}
