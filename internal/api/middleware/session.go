package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the session id in both directions
const SessionHeader = "X-Session-ID"

const (
	sessionKey       = "session_id"
	sessionIssuedKey = "session_issued"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// SessionMiddleware reads the session id from the request, issuing a new one when
// absent, and echoes it on the response.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = uuid.NewString()
			c.Set(sessionIssuedKey, true)
		} else if !sessionIDPattern.MatchString(id) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
			return
		}

		c.Set(sessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionIssued reports whether the request came without a session id and was
// given a fresh one. Such a session has no stored state yet.
func SessionIssued(c *gin.Context) bool {
	return c.GetBool(sessionIssuedKey)
}

// GetSessionFromContext returns the session id set by SessionMiddleware
func GetSessionFromContext(c *gin.Context) (string, bool) {
	id, ok := c.Get(sessionKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}
