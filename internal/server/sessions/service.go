// Package sessions tracks the single active demo session of the backing
// store. Ending it restores the seed dataset.
package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/server/auth"
	"github.com/dmitrijs2005/salesmatch/internal/server/config"
	"github.com/google/uuid"
)

// Resetter restores the dataset to its seed values.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Recorder receives session events for metrics.
type Recorder interface {
	RecordLogin(success bool)
	RecordReset()
}

type nopRecorder struct{}

func (nopRecorder) RecordLogin(bool) {}
func (nopRecorder) RecordReset()     {}

// Service issues tokens for the one active session. A new login replaces the
// previous session, and tokens of replaced or ended sessions stop validating.
type Service struct {
	mu       sync.Mutex
	active   string
	store    Resetter
	metrics  Recorder
	secret   []byte
	validity time.Duration
	newID    func() string
}

func NewService(store Resetter, cfg *config.Config, m Recorder) *Service {
	if m == nil {
		m = nopRecorder{}
	}
	return &Service{
		store:    store,
		metrics:  m,
		secret:   []byte(cfg.SecretKey),
		validity: cfg.TokenValidityDuration,
		newID:    uuid.NewString,
	}
}

// Login accepts any non-empty credential pair and returns a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		s.metrics.RecordLogin(false)
		return "", common.ErrInvalidCredentials
	}

	id := s.newID()
	token, err := auth.GenerateToken(id, username, s.secret, s.validity)
	if err != nil {
		s.metrics.RecordLogin(false)
		return "", fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	s.mu.Lock()
	s.active = id
	s.mu.Unlock()

	s.metrics.RecordLogin(true)
	return token, nil
}

// Validate checks the token signature and expiry and that it belongs to the
// active session.
func (s *Service) Validate(token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == "" || claims.SessionID() != active {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// Active reports whether a session is open.
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != ""
}

// Logout ends the session, if any, and restores the seed dataset. It is
// idempotent: every call resets the data.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.active = ""
	s.mu.Unlock()

	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	s.metrics.RecordReset()
	return nil
}
