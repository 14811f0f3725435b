package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/api/middleware"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/service"
	"github.com/nexusshop/storefront/pkg/errors"
)

// respondError maps domain errors to HTTP statuses. Anything unexpected is logged
// and reported as a 500 with msg.
func respondError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": e.Fields})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrEmptyCart:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error(), "code": "empty_cart"})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error(), "code": "invalid_step"})
	case *errors.ErrPaymentProcessing:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error(), "code": "processing"})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation failed",
		"details": err.Error(),
	})
}

// currentSession resolves the session of the request, loading it if needed
func currentSession(c *gin.Context, sessions *service.SessionManager) *service.Session {
	id, _ := middleware.GetSessionFromContext(c)
	return sessions.Session(c.Request.Context(), id)
}

// existingSession is currentSession for read-only routes. A request that was just
// issued an id has nothing stored, so no session is loaded for it.
func existingSession(c *gin.Context, sessions *service.SessionManager) (*service.Session, bool) {
	if middleware.SessionIssued(c) {
		return nil, false
	}
	return currentSession(c, sessions), true
}

type translator interface {
	T(key string) string
	Language() domain.Language
}

// translatorFor returns the session language, or the default one for a new session
func translatorFor(c *gin.Context, sessions *service.SessionManager) translator {
	sess, ok := existingSession(c, sessions)
	if !ok {
		return sessions.DefaultTranslator()
	}
	return sess.Language
}
