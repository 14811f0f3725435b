package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/i18n"
	"github.com/nexusshop/storefront/internal/storage"
	"github.com/nexusshop/storefront/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	respondError(c, zap.NewNop(), err, "request failed")

	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRespondErrorUnsupportedLanguage(t *testing.T) {
	pref := i18n.LoadPreference(context.Background(), storage.NewMemoryStore(), domain.LanguageEnglish, zap.NewNop())
	err := pref.Set(context.Background(), "de")
	require.Error(t, err)

	rec, body := respond(err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Unsupported language", body["fields"].(map[string]interface{})["language"])
}

func TestRespondErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", &errors.ErrNotFound{Resource: "product", ID: "x"}, http.StatusNotFound, ""},
		{"empty cart", &errors.ErrEmptyCart{}, http.StatusConflict, "empty_cart"},
		{"processing", &errors.ErrPaymentProcessing{}, http.StatusConflict, "processing"},
		{"invalid step", &errors.ErrInvalidStateTransition{From: domain.CheckoutStepConfirmation, To: domain.CheckoutStepShipping}, http.StatusConflict, "invalid_step"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := respond(tt.err)
			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, body["code"])
			}
		})
	}
}
