package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader lets API clients pass their session key explicitly.
	SessionHeader = "X-Session-ID"
	// SessionCookie is issued to browsers that did not send a key.
	SessionCookie = "session_id"

	maxSessionKeyLength = 128
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// Session resolves the key that scopes stored locations to one client. The key comes from
// the X-Session-ID header, then the session_id cookie; otherwise a new one is issued.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(SessionHeader)
		if key == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				key = cookie
			}
		}

		if key == "" || len(key) > maxSessionKeyLength {
			key = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, key, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(ContextKeySession, key)
		c.Header(SessionHeader, key)

		c.Next()
	}
}

// SessionKey returns the session key resolved by Session.
func SessionKey(c *gin.Context) string {
	return c.GetString(ContextKeySession)
}
