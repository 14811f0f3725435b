package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/service"
)

// HandleLogin handles POST /v1/auth/login
func HandleLogin(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		user, err := sessions.Login(c.Request.Context(), currentSession(c, sessions), req.Name, req.Email)
		if err != nil {
			respondError(c, logger, err, "failed to sign in")
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// HandleLogout handles POST /v1/auth/logout
func HandleLogout(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := existingSession(c, sessions); ok {
			sessions.Logout(c.Request.Context(), sess)
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleMe handles GET /v1/auth/me
func HandleMe(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := existingSession(c, sessions)
		var user domain.User
		if ok {
			user, ok = sess.Auth.CurrentUser()
		}
		if !ok {
			c.JSON(http.StatusOK, gin.H{"signed_in": false, "user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"signed_in": true, "user": user})
	}
}
