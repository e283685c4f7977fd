package service

import (
	"context"
	"fmt"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.Authenticator = (*AuthService)(nil)

// AuthService exchanges credentials or an OAuth-style code for a
// session and persists it. Logout clears the session only; the
// guest cart stays until checkout success explicitly clears it.
type AuthService struct {
	store    port.SessionStore
	gateway  port.AuthGateway
	notifier port.Notifier
}

func NewAuthService(
	store port.SessionStore,
	gateway port.AuthGateway,
	notifier port.Notifier,
) *AuthService {
	return &AuthService{store: store, gateway: gateway, notifier: notifier}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) error {
	const op = "AuthService.Login"

	sess, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.notifier.Error("Login failed")
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.SetSession(sess); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notifier.Success("Logged in successfully")
	return nil
}

func (s *AuthService) HandleCallback(ctx context.Context, code string) error {
	const op = "AuthService.HandleCallback"

	sess, err := s.gateway.ExchangeCode(ctx, code)
	if err != nil {
		s.notifier.Error("Login failed")
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.SetSession(sess); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notifier.Success("Logged in successfully")
	return nil
}

func (s *AuthService) Logout() error {
	const op = "AuthService.Logout"

	if err := s.store.ClearSession(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notifier.Success("Logged out successfully")
	return nil
}

func (s *AuthService) Session() domain.AuthSession {
	return s.store.Session()
}
