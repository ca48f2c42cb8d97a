// Package session holds the dashboard's authentication state: one token,
// present or absent.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/logging"
)

type Credentials struct {
	Username string
	Password string
}

// Remote is the backend side of a session.
type Remote interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Gate owns the session token. It is safe for concurrent use.
type Gate struct {
	mu     sync.RWMutex
	token  string
	remote Remote
	logger logging.Logger
}

func NewGate(r Remote, l logging.Logger) *Gate {
	if l == nil {
		l = logging.Nop{}
	}
	return &Gate{remote: r, logger: l.With("module", "session")}
}

// Authenticate exchanges credentials for a token. Empty fields are rejected
// without contacting the backend. A failed attempt leaves the current state
// untouched.
func (g *Gate) Authenticate(ctx context.Context, c Credentials) (string, error) {
	if c.Username == "" || c.Password == "" {
		return "", common.ErrInvalidCredentials
	}

	token, err := g.remote.Authenticate(ctx, c.Username, c.Password)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	g.token = token
	g.mu.Unlock()

	g.logger.Debug(ctx, "session started", "username", c.Username)
	return token, nil
}

func (g *Gate) IsActive() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token != ""
}

// Token returns the current token, or "" when no session is active.
func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// EndSession clears the token, then asks the backend to end its session and
// restore the demo dataset. The local session is ended even when the backend
// call fails; that error is returned. Calling it again is harmless.
func (g *Gate) EndSession(ctx context.Context) error {
	g.mu.Lock()
	token := g.token
	g.token = ""
	g.mu.Unlock()

	if err := g.remote.Logout(ctx, token); err != nil {
		g.logger.Warn(ctx, "backend reset failed", "error", err)
		return err
	}
	return nil
}

// Invalidate forgets the token without contacting the backend. Used when the
// backend has already rejected it.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = ""
}
