package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/checkout"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/service"
)

// HandleStartCheckout handles POST /v1/checkout
func HandleStartCheckout(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c, sessions)
		snap, err := sessions.StartCheckout(c.Request.Context(), sess)
		if err != nil {
			respondError(c, logger, err, "failed to start checkout")
			return
		}
		c.JSON(http.StatusCreated, snap)
	}
}

// HandleGetCheckout handles GET /v1/checkout
func HandleGetCheckout(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := existingSession(c, sessions)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "checkout not found"})
			return
		}

		flow, err := sessions.Checkout(sess)
		if err != nil {
			respondError(c, logger, err, "failed to get checkout")
			return
		}

		snap, err := flow.Snapshot()
		if err != nil {
			respondError(c, logger, err, "failed to get checkout")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// HandleSubmitShipping handles POST /v1/checkout/shipping
func HandleSubmitShipping(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info domain.ShippingInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			bindError(c, err)
			return
		}

		snap, err := sessions.SubmitShipping(c.Request.Context(), currentSession(c, sessions), info)
		if err != nil {
			respondError(c, logger, err, "failed to submit shipping")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// HandleSubmitPayment handles POST /v1/checkout/payment. The response is sent
// once the simulated processing is over.
func HandleSubmitPayment(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info domain.PaymentInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			bindError(c, err)
			return
		}

		order, err := sessions.SubmitPayment(c.Request.Context(), currentSession(c, sessions), info)
		if err != nil {
			respondError(c, logger, err, "failed to submit payment")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"step":  domain.CheckoutStepConfirmation,
			"order": order,
		})
	}
}

// HandleCheckoutBack handles POST /v1/checkout/back
func HandleCheckoutBack(sessions *service.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := sessions.Back(c.Request.Context(), currentSession(c, sessions))
		if err != nil {
			respondError(c, logger, err, "failed to go back")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// HandleFormatPaymentInput handles GET /v1/checkout/format?card_number=&expiry_date=&cvv=
func HandleFormatPaymentInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.FormatResponse{
			CardNumber: checkout.FormatCardNumber(c.Query("card_number")),
			ExpiryDate: checkout.FormatExpiryDate(c.Query("expiry_date")),
			CVV:        checkout.FormatCVV(c.Query("cvv")),
		})
	}
}
