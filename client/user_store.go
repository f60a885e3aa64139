package client

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// UserStore holds the authenticated identity, persisted to a durable local
// slot. It has exactly two states: signed in with a server-confirmed
// identity, or signed out.
//
// Unlike the inventory container, failed operations here do not return an
// error: they are logged and reported as a nil result, leaving the caller to
// branch on the result instead.
type UserStore struct {
	mu      sync.Mutex
	gateway AuthGateway
	slot    Slot
	logger  *zap.Logger
	user    *Identity
}

// NewUserStore builds the container, restoring any identity found in the
// slot. A corrupt or missing slot means signed out.
func NewUserStore(gateway AuthGateway, slot Slot, logger *zap.Logger) *UserStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &UserStore{gateway: gateway, slot: slot, logger: logger}
	if identity, err := slot.Load(); err == nil && identity != nil {
		store.user = identity
	}
	return store
}

// SignIn authenticates and, on success, stores the confirmed identity in
// memory and in the slot. Any failure returns nil without deauthenticating
// an already signed-in user.
func (s *UserStore) SignIn(ctx context.Context, email, password string) *SignInResult {
	result, err := s.gateway.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Warn("sign-in failed", zap.Error(err))
		return nil
	}

	if err := s.slot.Save(result.User); err != nil {
		s.logger.Warn("persisting identity failed", zap.Error(err))
	}

	s.mu.Lock()
	identity := result.User
	s.user = &identity
	s.mu.Unlock()

	return &result
}

// SignUp creates an account. It never transitions the container: after a
// successful sign-up the caller still has to sign in.
func (s *UserStore) SignUp(ctx context.Context, name, email, password string) *MessageResult {
	result, err := s.gateway.SignUp(ctx, name, email, password)
	if err != nil {
		s.logger.Warn("sign-up failed", zap.Error(err))
		return nil
	}

	return &result
}

// ClearUser removes the durable slot and the in-memory identity. Safe to
// call repeatedly.
func (s *UserStore) ClearUser() {
	if err := s.slot.Clear(); err != nil {
		s.logger.Warn("clearing identity slot failed", zap.Error(err))
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Current returns a copy of the signed-in identity, nil when signed out.
func (s *UserStore) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	identity := *s.user
	return &identity
}
