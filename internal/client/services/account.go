// Package services is the dashboard's single entry point to the backend:
// authentication, the account list and status updates, all gated on the
// current session.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesmatch/internal/client/client"
	"github.com/dmitrijs2005/salesmatch/internal/client/session"
	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
)

// AccountService defines the backend operations used by the dashboard.
//
// Contract:
//   - Authenticate: start a session; empty credentials fail locally.
//   - ListAccounts / UpdateStatus: require an active session and fail with
//     common.ErrUnauthorized without a network call otherwise.
//   - UpdateStatus returns the backend's post-update record.
//   - Logout: end the session and reset the backend dataset.
//   - Invalidate: drop a session the backend has rejected, locally only.
//   - Ping: check server liveness.
//   - Close: release the transport.
//
// All methods block until the backend answers or ctx is done.
type AccountService interface {
	Authenticate(ctx context.Context, c session.Credentials) error
	IsAuthenticated() bool
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Account, error)
	Logout(ctx context.Context) error
	Invalidate()
	Ping(ctx context.Context) error
	Close() error
}

type accountService struct {
	client client.Client
	gate   *session.Gate
}

// NewAccountService binds the remote client to the session gate.
func NewAccountService(c client.Client, g *session.Gate) AccountService {
	return &accountService{client: c, gate: g}
}

func (s *accountService) Authenticate(ctx context.Context, c session.Credentials) error {
	if _, err := s.gate.Authenticate(ctx, c); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

func (s *accountService) IsAuthenticated() bool {
	return s.gate.IsActive()
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	token := s.gate.Token()
	if token == "" {
		return nil, common.ErrUnauthorized
	}
	return s.client.ListAccounts(ctx, token)
}

func (s *accountService) UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Account, error) {
	token := s.gate.Token()
	if token == "" {
		return models.Account{}, common.ErrUnauthorized
	}
	if !status.Valid() {
		return models.Account{}, fmt.Errorf("%w: %q", common.ErrInvalidStatus, status)
	}
	return s.client.UpdateStatus(ctx, token, id, status)
}

func (s *accountService) Logout(ctx context.Context) error {
	return s.gate.EndSession(ctx)
}

func (s *accountService) Invalidate() {
	s.gate.Invalidate()
}

func (s *accountService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *accountService) Close() error {
	return s.client.Close()
}
