package remote

import (
	"context"
	"net/http"
)

// Session is the opaque result of a successful sign-in. Its internals
// belong to the authentication provider.
type Session struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

// SignIn authenticates an administrator against the remote service. Bad
// credentials come back as an *APIError carrying the provider's
// explanation.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	payload := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, payload, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}
