package remote

import (
	"context"
	"fmt"
	"net/http"
)

// CredentialResult is the remote service's verdict on a credential test.
// It is a data value, not an error: a failed login is a business outcome,
// distinct from a transport failure.
type CredentialResult struct {
	Success  bool    `json:"success"`
	Schedule *string `json:"schedule,omitempty"`
	Error    *string `json:"error,omitempty"`
}

// TestCredentials asks the remote service to attempt a login with the
// applicant's stored credentials and extract the schedule number. On full
// success the service also refreshes the applicant's schedule field.
func (c *Client) TestCredentials(ctx context.Context, applicantID int64) (CredentialResult, error) {
	var result CredentialResult
	path := fmt.Sprintf("/api/applicants/%d/test-credentials", applicantID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return CredentialResult{}, err
	}
	return result, nil
}
