package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/service"
)

var availableLanguages = []domain.Language{domain.LanguageSlovak, domain.LanguageEnglish}

// HandleGetLanguage handles GET /v1/language
func HandleGetLanguage(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"language":  translatorFor(c, sessions).Language(),
			"available": availableLanguages,
		})
	}
}

// HandleSetLanguage handles PUT /v1/language
func HandleSetLanguage(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		pref := currentSession(c, sessions).Language
		if err := pref.Set(c.Request.Context(), req.Language); err != nil {
			respondError(c, logger, err, "failed to set language")
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": pref.Language()})
	}
}

// HandleTranslate handles GET /v1/translations/:key in the session language
func HandleTranslate(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		c.JSON(http.StatusOK, gin.H{"key": key, "value": translatorFor(c, sessions).T(key)})
	}
}
