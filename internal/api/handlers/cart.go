package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/service"
)

// HandleGetCart handles GET /v1/cart
func HandleGetCart(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := existingSession(c, sessions)
		if !ok {
			c.JSON(http.StatusOK, service.EmptyCartResponse())
			return
		}
		c.JSON(http.StatusOK, service.NewCartResponse(sess.Cart))
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		sess := currentSession(c, sessions)
		if err := sessions.AddItem(c.Request.Context(), sess, req.ProductID, req.Size, req.Quantity); err != nil {
			respondError(c, logger, err, "failed to add item")
			return
		}

		c.JSON(http.StatusCreated, service.NewCartResponse(sess.Cart))
	}
}

// HandleUpdateItem handles PATCH /v1/cart/items/:productId/:size
func HandleUpdateItem(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		sess := currentSession(c, sessions)
		err := sessions.UpdateQuantity(c.Request.Context(), sess, c.Param("productId"), c.Param("size"), *req.Quantity)
		if err != nil {
			respondError(c, logger, err, "failed to update item")
			return
		}

		c.JSON(http.StatusOK, service.NewCartResponse(sess.Cart))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:productId/:size
func HandleRemoveItem(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c, sessions)
		if err := sessions.RemoveItem(c.Request.Context(), sess, c.Param("productId"), c.Param("size")); err != nil {
			respondError(c, logger, err, "failed to remove item")
			return
		}
		c.JSON(http.StatusOK, service.NewCartResponse(sess.Cart))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c, sessions)
		if err := sessions.ClearCart(c.Request.Context(), sess); err != nil {
			respondError(c, logger, err, "failed to clear cart")
			return
		}
		c.JSON(http.StatusOK, service.NewCartResponse(sess.Cart))
	}
}
