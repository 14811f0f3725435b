package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/api/middleware"
	"github.com/nexusshop/storefront/internal/cart"
	"github.com/nexusshop/storefront/internal/checkout"
	"github.com/nexusshop/storefront/internal/config"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/events"
	"github.com/nexusshop/storefront/internal/metrics"
	"github.com/nexusshop/storefront/internal/service"
	"github.com/nexusshop/storefront/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type client struct {
	t       *testing.T
	router  *gin.Engine
	metrics *metrics.Metrics
	session string
}

func newClient(t *testing.T) *client {
	t.Helper()
	immediate := func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}
	m := metrics.New()
	sessions := service.NewSessionManager(storage.NewMemoryStore(), service.SessionConfig{
		Pricing:         cart.DefaultPricing(),
		DefaultLanguage: domain.LanguageEnglish,
		FlowOptions:     []checkout.Option{checkout.WithTimer(immediate)},
	}, events.NopPublisher{}, m, zap.NewNop())

	router := NewRouter(&config.Config{Environment: "test"}, sessions, m, zap.NewNop())
	return &client{t: t, router: router, metrics: m, session: "test-session"}
}

func (c *client) do(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.session != "" {
		req.Header.Set(middleware.SessionHeader, c.session)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	var out map[string]interface{}
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	rec, body := newClient(t).do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestSessionIssuedWhenMissing(t *testing.T) {
	c := newClient(t)
	c.session = ""
	rec, _ := c.do(http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.SessionHeader))

	c.session = "bad id!"
	rec, _ = c.do(http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogRoutes(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodGet, "/v1/products?category=shoes&sort=price-high", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, body["count"])
	first := body["products"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "shoes-2", first["id"])

	rec, _ = c.do(http.MethodGet, "/v1/products?sort=random", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = c.do(http.MethodGet, "/v1/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", body["error"])

	rec, body = c.do(http.MethodGet, "/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["categories"], 5)
}

func TestCartRoutes(t *testing.T) {
	c := newClient(t)

	rec, _ := c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shirt-1", "size": "M", "quantity": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, body := c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shirt-1", "size": "M", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, body["items"], 1)
	assert.EqualValues(t, 3, body["item_count"])
	assert.Equal(t, "149.97", body["subtotal"])
	assert.Equal(t, "9.99", body["shipping"])

	rec, body = c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shirt-1", "size": "XXL"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body["fields"], "size")

	rec, _ = c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "ghost", "size": "M"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = c.do(http.MethodPost, "/v1/cart/items", gin.H{"size": "M"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = c.do(http.MethodPatch, "/v1/cart/items/shirt-1/M", gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 5, body["item_count"])

	rec, _ = c.do(http.MethodPatch, "/v1/cart/items/pants-1/32", gin.H{"quantity": 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = c.do(http.MethodPatch, "/v1/cart/items/shirt-1/M", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["is_empty"])

	_, _ = c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "acc-2", "size": "One Size"})
	rec, body = c.do(http.MethodDelete, "/v1/cart/items/acc-2/One%20Size", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["is_empty"])
}

func TestCheckoutRoutes(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodPost, "/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "empty_cart", body["code"])

	rec, _ = c.do(http.MethodGet, "/v1/checkout", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shoes-1", "size": "10"})
	rec, body = c.do(http.MethodPost, "/v1/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "shipping", body["step"])

	rec, _ = c.do(http.MethodPost, "/v1/checkout/payment", gin.H{})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = c.do(http.MethodPost, "/v1/checkout/shipping", gin.H{"email": "abc"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := body["fields"].(map[string]interface{})
	assert.Len(t, fields, 7)
	assert.Equal(t, "Invalid email", fields["email"])

	rec, body = c.do(http.MethodPost, "/v1/checkout/shipping", domain.ShippingInfo{
		FirstName: "Jana", LastName: "Novak", Email: "jana@example.com",
		Address: "Hlavna 1", City: "Bratislava", State: "BA", ZipCode: "81101",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payment", body["step"])

	rec, body = c.do(http.MethodPost, "/v1/checkout/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shipping", body["step"])
	c.do(http.MethodPost, "/v1/checkout/shipping", domain.ShippingInfo{
		FirstName: "Jana", LastName: "Novak", Email: "jana@example.com",
		Address: "Hlavna 1", City: "Bratislava", State: "BA", ZipCode: "81101",
	})

	rec, body = c.do(http.MethodPost, "/v1/checkout/payment", domain.PaymentInfo{
		CardNumber: "4111 1111 1111 111", CardName: "Jana", ExpiryDate: "12/29", CVV: "123",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid card number", body["fields"].(map[string]interface{})["cardNumber"])

	rec, body = c.do(http.MethodPost, "/v1/checkout/payment", domain.PaymentInfo{
		CardNumber: "4111 1111 1111 1111", CardName: "Jana", ExpiryDate: "12/29", CVV: "123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	order := body["order"].(map[string]interface{})
	assert.Regexp(t, `^NX\d{8}$`, order["id"])
	assert.Equal(t, "189.99", order["total"])

	rec, body = c.do(http.MethodGet, "/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmation", body["step"])

	rec, body = c.do(http.MethodGet, "/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["is_empty"])

	rec, _ = c.do(http.MethodPost, "/v1/checkout/back", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFormatRoute(t *testing.T) {
	rec, body := newClient(t).do(http.MethodGet, "/v1/checkout/format?card_number=4111111111111111&expiry_date=1229&cvv=12345", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4111 1111 1111 1111", body["card_number"])
	assert.Equal(t, "12/29", body["expiry_date"])
	assert.Equal(t, "1234", body["cvv"])
}

func TestAuthAndLanguageRoutes(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodGet, "/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["signed_in"])

	rec, _ = c.do(http.MethodPost, "/v1/auth/login", gin.H{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = c.do(http.MethodPost, "/v1/auth/login", gin.H{"name": "  Jana "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jana", body["user"].(map[string]interface{})["name"])

	rec, body = c.do(http.MethodGet, "/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["signed_in"])

	rec, _ = c.do(http.MethodPost, "/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, body = c.do(http.MethodGet, "/v1/language", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", body["language"])

	rec, _ = c.do(http.MethodPut, "/v1/language", gin.H{"language": "de"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = c.do(http.MethodPut, "/v1/language", gin.H{"language": "sk"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sk", body["language"])

	rec, body = c.do(http.MethodGet, "/v1/translations/cart.empty", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Váš košík je prázdny", body["value"])
}

func TestMetricsRoute(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodGet, "/v1/cart", nil)

	rec, _ := c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_http_requests_total{method="GET",route="/v1/cart",status="200"} 1`)
}

func TestReadsWithoutSessionDoNotLoadSessions(t *testing.T) {
	c := newClient(t)
	c.session = ""

	for i := 0; i < 50; i++ {
		for _, path := range []string{
			"/v1/categories",
			"/v1/products/nope",
			"/v1/auth/me",
			"/v1/language",
			"/v1/translations/nav.home",
			"/v1/cart",
		} {
			rec, _ := c.do(http.MethodGet, path, nil)
			assert.Less(t, rec.Code, http.StatusInternalServerError, path)
			assert.NotEmpty(t, rec.Header().Get(middleware.SessionHeader))
		}
	}
	rec, _ := c.do(http.MethodGet, "/v1/checkout", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = c.do(http.MethodPost, "/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Zero(t, testutil.ToFloat64(c.metrics.ActiveSessions))

	_, body := c.do(http.MethodGet, "/v1/language", nil)
	assert.Equal(t, "en", body["language"])
	_, body = c.do(http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, true, body["is_empty"])
	assert.Equal(t, "0", body["total"])

	c.session = "known"
	c.do(http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.ActiveSessions))
}

func TestQuantityUpperBound(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shirt-1", "size": "M", "quantity": 1000})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation failed", body["error"])

	rec, _ = c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shirt-1", "size": "M", "quantity": 999})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, body = c.do(http.MethodPost, "/v1/cart/items", gin.H{"product_id": "shirt-1", "size": "M", "quantity": 999})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(cart.MaxQuantity), body["item_count"])

	rec, _ = c.do(http.MethodPatch, "/v1/cart/items/shirt-1/M", gin.H{"quantity": 5000})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
