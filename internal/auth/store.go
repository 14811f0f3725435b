// Package auth keeps the display identity of a session. There are no credentials:
// signing in records a name, signing out forgets it.
package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/storage"
	"github.com/nexusshop/storefront/pkg/errors"
)

// StorageKey is the record holding the current user
const StorageKey = "nexus-user"

// Store holds the current user of a session
type Store struct {
	mu     sync.RWMutex
	user   *domain.User
	store  storage.Store
	logger *zap.Logger
}

// Load rehydrates the current user. A missing or malformed record means signed out.
func Load(ctx context.Context, store storage.Store, logger *zap.Logger) *Store {
	s := &Store{store: store, logger: logger}

	var user domain.User
	if storage.LoadJSON(ctx, store, StorageKey, &user, logger) && strings.TrimSpace(user.Name) != "" {
		s.user = &user
	}

	return s
}

// Login signs in under name, replacing any current user
func (s *Store) Login(ctx context.Context, name, email string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, &errors.ErrValidation{Fields: map[string]string{"name": "name is required"}}
	}

	user := domain.User{
		ID:    uuid.New(),
		Name:  name,
		Email: strings.TrimSpace(email),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if err := storage.SaveJSON(ctx, s.store, StorageKey, user); err != nil {
		s.logger.Warn("Failed to persist user", zap.Error(err))
	}

	return user, nil
}

// Logout forgets the current user. It is a no-op when signed out.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		s.logger.Warn("Failed to delete persisted user", zap.Error(err))
	}
}

// CurrentUser returns the signed-in user. The boolean is false when signed out.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}
