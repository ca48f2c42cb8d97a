package session

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu sync.Mutex

	token   string
	authErr error

	authCalls    int
	logoutTokens []string
	logoutErr    error
}

func (f *fakeRemote) Authenticate(ctx context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authCalls++
	if f.authErr != nil {
		return "", f.authErr
	}
	return f.token, nil
}

func (f *fakeRemote) Logout(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutTokens = append(f.logoutTokens, token)
	return f.logoutErr
}

func TestGate_InitiallyInactive(t *testing.T) {
	g := NewGate(&fakeRemote{}, nil)

	assert.False(t, g.IsActive())
	assert.Empty(t, g.Token())
}

func TestGate_AuthenticateRejectsEmptyWithoutRemoteCall(t *testing.T) {
	r := &fakeRemote{token: "tok"}
	g := NewGate(r, nil)

	for _, c := range []Credentials{{}, {Username: "a"}, {Password: "b"}} {
		_, err := g.Authenticate(context.Background(), c)
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	}
	assert.Zero(t, r.authCalls)
	assert.False(t, g.IsActive())
}

func TestGate_AuthenticateStoresToken(t *testing.T) {
	g := NewGate(&fakeRemote{token: "mock-jwt-token-1"}, nil)

	tok, err := g.Authenticate(context.Background(), Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, "mock-jwt-token-1", tok)
	assert.True(t, g.IsActive())
	assert.Equal(t, "mock-jwt-token-1", g.Token())
}

func TestGate_FailedAuthenticateKeepsState(t *testing.T) {
	r := &fakeRemote{token: "first"}
	g := NewGate(r, nil)
	ctx := context.Background()

	_, err := g.Authenticate(ctx, Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)

	r.authErr = common.ErrUnavailable
	_, err = g.Authenticate(ctx, Credentials{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.Equal(t, "first", g.Token())
}

func TestGate_EndSessionIsIdempotent(t *testing.T) {
	r := &fakeRemote{token: "tok"}
	g := NewGate(r, nil)
	ctx := context.Background()

	_, err := g.Authenticate(ctx, Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)

	require.NoError(t, g.EndSession(ctx))
	assert.False(t, g.IsActive())

	require.NoError(t, g.EndSession(ctx))
	assert.False(t, g.IsActive())

	assert.Equal(t, []string{"tok", ""}, r.logoutTokens)
}

func TestGate_EndSessionClearsTokenEvenWhenBackendFails(t *testing.T) {
	r := &fakeRemote{token: "tok", logoutErr: common.ErrUnavailable}
	g := NewGate(r, nil)
	ctx := context.Background()

	_, err := g.Authenticate(ctx, Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)

	err = g.EndSession(ctx)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.False(t, g.IsActive())
}

func TestGate_InvalidateSkipsBackend(t *testing.T) {
	r := &fakeRemote{token: "tok"}
	g := NewGate(r, nil)

	_, err := g.Authenticate(context.Background(), Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)

	g.Invalidate()

	assert.False(t, g.IsActive())
	assert.Empty(t, r.logoutTokens)
}
