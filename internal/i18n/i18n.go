// Package i18n resolves display strings for the supported languages and keeps a
// session's language preference.
package i18n

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/storage"
	"github.com/nexusshop/storefront/pkg/errors"
)

// StorageKey is the record holding the language preference
const StorageKey = "nexus-language"

// Translator looks keys up in one language
type Translator struct {
	lang domain.Language
}

// NewTranslator returns a translator for lang. Unknown languages fall back to Slovak.
func NewTranslator(lang domain.Language) Translator {
	if !lang.IsValid() {
		lang = domain.LanguageSlovak
	}
	return Translator{lang: lang}
}

func (t Translator) Language() domain.Language {
	return t.lang
}

// T returns the translation of key, or key itself when there is none
func (t Translator) T(key string) string {
	if v, ok := translations[t.lang][key]; ok && v != "" {
		return v
	}
	return key
}

// Preference is a session's persisted language choice
type Preference struct {
	mu     sync.RWMutex
	lang   domain.Language
	store  storage.Store
	logger *zap.Logger
}

// LoadPreference reads the stored language. Missing or unsupported values fall back to def.
func LoadPreference(ctx context.Context, store storage.Store, def domain.Language, logger *zap.Logger) *Preference {
	if !def.IsValid() {
		def = domain.LanguageSlovak
	}
	p := &Preference{lang: def, store: store, logger: logger}

	data, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		logger.Warn("Failed to read language preference", zap.Error(err))
		return p
	}
	if !ok {
		return p
	}

	// accept raw and JSON-quoted values
	saved := domain.Language(strings.Trim(strings.TrimSpace(string(data)), `"`))
	if saved.IsValid() {
		p.lang = saved
	} else {
		logger.Warn("Ignoring unsupported language preference", zap.String("value", string(data)))
	}
	return p
}

func (p *Preference) Language() domain.Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// Translator returns a translator for the current language
func (p *Preference) Translator() Translator {
	return NewTranslator(p.Language())
}

// Set switches the language and persists it
func (p *Preference) Set(ctx context.Context, lang domain.Language) error {
	if !lang.IsValid() {
		return &errors.ErrValidation{Fields: map[string]string{"language": p.T("error.unknownLanguage")}}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.lang = lang
	if err := p.store.Set(ctx, StorageKey, []byte(lang)); err != nil {
		p.logger.Warn("Failed to persist language preference", zap.Error(err))
	}
	return nil
}

// T translates key in the current language
func (p *Preference) T(key string) string {
	return p.Translator().T(key)
}
