package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionEmailKey = "email"

// SessionManager keeps the administrator's signed-in state in a secure
// cookie. The actual authentication happens against the remote service;
// only the fact of a successful sign-in lives here.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
}

// NewSessionManager creates a cookie-backed session manager. maxAge is in
// seconds.
func NewSessionManager(secret, cookieName string, maxAge int) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: cookieName}
}

// SignIn records a successful sign-in for the given administrator.
func (m *SessionManager) SignIn(c *gin.Context, email string) error {
	session, _ := m.store.Get(c.Request, m.name)
	session.Values[sessionEmailKey] = email
	return session.Save(c.Request, c.Writer)
}

// SignOut clears the session cookie.
func (m *SessionManager) SignOut(c *gin.Context) error {
	session, _ := m.store.Get(c.Request, m.name)
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

// Email returns the signed-in administrator's email, if any.
func (m *SessionManager) Email(r *http.Request) (string, bool) {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		return "", false
	}
	email, ok := session.Values[sessionEmailKey].(string)
	return email, ok && email != ""
}

// RequireAuth rejects requests without a signed-in session.
func (m *SessionManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.Email(c.Request); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
