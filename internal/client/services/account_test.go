package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/salesmatch/internal/client/session"
	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token   string
	authErr error

	list    []models.Account
	listErr error

	updated   models.Account
	updateErr error

	calls     []string
	lastToken string
	pingErr   error
	closed    bool
	logoutErr error
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	f.calls = append(f.calls, "auth")
	return f.token, f.authErr
}

func (f *fakeClient) ListAccounts(ctx context.Context, token string) ([]models.Account, error) {
	f.calls = append(f.calls, "list")
	f.lastToken = token
	return f.list, f.listErr
}

func (f *fakeClient) UpdateStatus(ctx context.Context, token string, id int64, status models.Status) (models.Account, error) {
	f.calls = append(f.calls, "update")
	f.lastToken = token
	return f.updated, f.updateErr
}

func (f *fakeClient) Logout(ctx context.Context, token string) error {
	f.calls = append(f.calls, "logout")
	f.lastToken = token
	return f.logoutErr
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return f.pingErr
}

func newService(c *fakeClient) AccountService {
	return NewAccountService(c, session.NewGate(c, nil))
}

func login(t *testing.T, s AccountService) {
	t.Helper()
	require.NoError(t, s.Authenticate(context.Background(), session.Credentials{Username: "u", Password: "p"}))
}

func TestUnauthenticatedCallsFailWithoutNetwork(t *testing.T) {
	c := &fakeClient{}
	s := newService(c)
	ctx := context.Background()

	_, err := s.ListAccounts(ctx)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = s.UpdateStatus(ctx, 1, models.StatusTarget)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	assert.Empty(t, c.calls)
}

func TestAuthenticate(t *testing.T) {
	c := &fakeClient{token: "tok"}
	s := newService(c)

	err := s.Authenticate(context.Background(), session.Credentials{})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())

	login(t, s)
	assert.True(t, s.IsAuthenticated())
}

func TestAuthenticate_BackendRejects(t *testing.T) {
	c := &fakeClient{authErr: common.ErrInvalidCredentials}
	s := newService(c)

	err := s.Authenticate(context.Background(), session.Credentials{Username: "u", Password: "p"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())
}

func TestListAccounts_PassesToken(t *testing.T) {
	c := &fakeClient{token: "tok", list: []models.Account{{ID: 1}}}
	s := newService(c)
	login(t, s)

	got, err := s.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, c.list, got)
	assert.Equal(t, "tok", c.lastToken)
}

func TestUpdateStatus(t *testing.T) {
	c := &fakeClient{token: "tok", updated: models.Account{ID: 3, Status: models.StatusTarget}}
	s := newService(c)
	login(t, s)

	got, err := s.UpdateStatus(context.Background(), 3, models.StatusTarget)
	require.NoError(t, err)
	assert.Equal(t, c.updated, got)
}

func TestUpdateStatus_InvalidStatusSkipsNetwork(t *testing.T) {
	c := &fakeClient{token: "tok"}
	s := newService(c)
	login(t, s)

	_, err := s.UpdateStatus(context.Background(), 3, models.Status("Maybe"))
	assert.ErrorIs(t, err, common.ErrInvalidStatus)
	assert.Equal(t, []string{"auth"}, c.calls)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	c := &fakeClient{token: "tok", updateErr: common.ErrNotFound}
	s := newService(c)
	login(t, s)

	_, err := s.UpdateStatus(context.Background(), 99, models.StatusTarget)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogout_EndsSession(t *testing.T) {
	c := &fakeClient{token: "tok"}
	s := newService(c)
	login(t, s)

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "tok", c.lastToken)

	_, err := s.ListAccounts(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestPingAndClose(t *testing.T) {
	c := &fakeClient{pingErr: common.ErrUnavailable}
	s := newService(c)

	assert.ErrorIs(t, s.Ping(context.Background()), common.ErrUnavailable)
	require.NoError(t, s.Close())
	assert.True(t, c.closed)
}

func TestInvalidate_NoBackendCall(t *testing.T) {
	c := &fakeClient{token: "tok"}
	s := newService(c)
	login(t, s)

	s.Invalidate()

	assert.False(t, s.IsAuthenticated())
	assert.NotContains(t, c.calls, "logout")
}
