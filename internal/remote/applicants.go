package remote

import (
	"context"
	"fmt"
	"net/http"

	"visa-admin-backend/internal/model"
)

// ListApplicants returns all applicants. The response shape never carries
// passwords.
func (c *Client) ListApplicants(ctx context.Context) ([]model.Applicant, error) {
	var applicants []model.Applicant
	if err := c.do(ctx, http.MethodGet, "/api/applicants/", nil, nil, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

func (c *Client) GetApplicant(ctx context.Context, id int64) (model.Applicant, error) {
	var applicant model.Applicant
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/applicants/%d", id), nil, nil, &applicant); err != nil {
		return model.Applicant{}, err
	}
	return applicant, nil
}

func (c *Client) CreateApplicant(ctx context.Context, payload model.ApplicantCreate) (model.Applicant, error) {
	var applicant model.Applicant
	if err := c.do(ctx, http.MethodPost, "/api/applicants/", nil, payload, &applicant); err != nil {
		return model.Applicant{}, err
	}
	return applicant, nil
}

func (c *Client) UpdateApplicant(ctx context.Context, id int64, payload model.ApplicantUpdate) (model.Applicant, error) {
	var applicant model.Applicant
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/applicants/%d", id), nil, payload, &applicant); err != nil {
		return model.Applicant{}, err
	}
	return applicant, nil
}

func (c *Client) DeleteApplicant(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/applicants/%d", id), nil, nil, nil)
}
