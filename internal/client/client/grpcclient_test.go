package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	pb "github.com/dmitrijs2005/salesmatch/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastAuthReq   *pb.AuthenticateRequest
	lastUpdateReq *pb.UpdateStatusRequest
	lastToken     string

	authResp *pb.AuthenticateResponse
	authErr  error

	listResp *pb.ListAccountsResponse
	listErr  error

	updateResp *pb.UpdateStatusResponse
	updateErr  error

	logoutErr error

	pingResp *pb.PingResponse
	pingErr  error
}

func tokenFrom(ctx context.Context) string {
	md, _ := metadata.FromOutgoingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *fakePB) Authenticate(ctx context.Context, in *pb.AuthenticateRequest, opts ...grpc.CallOption) (*pb.AuthenticateResponse, error) {
	f.lastAuthReq = in
	return f.authResp, f.authErr
}
func (f *fakePB) ListAccounts(ctx context.Context, in *pb.ListAccountsRequest, opts ...grpc.CallOption) (*pb.ListAccountsResponse, error) {
	f.lastToken = tokenFrom(ctx)
	return f.listResp, f.listErr
}
func (f *fakePB) UpdateStatus(ctx context.Context, in *pb.UpdateStatusRequest, opts ...grpc.CallOption) (*pb.UpdateStatusResponse, error) {
	f.lastToken = tokenFrom(ctx)
	f.lastUpdateReq = in
	return f.updateResp, f.updateErr
}
func (f *fakePB) Logout(ctx context.Context, in *pb.LogoutRequest, opts ...grpc.CallOption) (*pb.LogoutResponse, error) {
	f.lastToken = tokenFrom(ctx)
	return &pb.LogoutResponse{}, f.logoutErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func newWithFake(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f}
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "x-other", "1")
	ctx = withAccessToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"1"}, md.Get("x-other"))
}

func TestMapError(t *testing.T) {
	s := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"unauthenticated", status.Error(codes.Unauthenticated, "missing token"), common.ErrUnauthorized},
		{"permission denied", status.Error(codes.PermissionDenied, "no"), common.ErrUnauthorized},
		{"not found", status.Error(codes.NotFound, "company not found"), common.ErrNotFound},
		{"invalid credentials", status.Error(codes.InvalidArgument, "invalid credentials"), common.ErrInvalidCredentials},
		{"invalid status", status.Error(codes.InvalidArgument, `invalid status: "x"`), common.ErrInvalidStatus},
		{"unavailable", status.Error(codes.Unavailable, "down"), common.ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), common.ErrUnavailable},
		{"internal", status.Error(codes.Internal, "internal error"), common.ErrUnknown},
		{"plain", errors.New("boom"), common.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	f := &fakePB{authResp: &pb.AuthenticateResponse{Message: "Login successful", Token: "tok"}}
	c := newWithFake(f)

	token, err := c.Authenticate(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.True(t, proto.Equal(&pb.AuthenticateRequest{Username: "alice", Password: "pw"}, f.lastAuthReq))
}

func TestAuthenticate_EmptyTokenIsUnknown(t *testing.T) {
	c := newWithFake(&fakePB{authResp: &pb.AuthenticateResponse{}})

	_, err := c.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrUnknown)
}

func TestListAccounts_SendsTokenAndConverts(t *testing.T) {
	f := &fakePB{listResp: &pb.ListAccountsResponse{Accounts: []*pb.Account{
		{Id: 1, Name: "Acme Corporation", Employees: 750, MatchScore: 92, Status: "None"},
		{Id: 2, Name: "TechGrowth Inc", Employees: 300, MatchScore: 87, Status: "Target"},
	}}}
	c := newWithFake(f)

	got, err := c.ListAccounts(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", f.lastToken)
	require.Len(t, got, 2)
	assert.Equal(t, models.StatusTarget, got[1].Status)
	assert.Equal(t, 750, got[0].Employees)
}

func TestListAccounts_RejectsUnknownStatus(t *testing.T) {
	c := newWithFake(&fakePB{listResp: &pb.ListAccountsResponse{Accounts: []*pb.Account{{Id: 1, Status: "Maybe"}}}})

	_, err := c.ListAccounts(context.Background(), "tok")
	assert.ErrorIs(t, err, common.ErrUnknown)
}

func TestUpdateStatus(t *testing.T) {
	f := &fakePB{updateResp: &pb.UpdateStatusResponse{Account: &pb.Account{Id: 3, Name: "Global Solutions", Status: "Target"}}}
	c := newWithFake(f)

	got, err := c.UpdateStatus(context.Background(), "tok", 3, models.StatusTarget)
	require.NoError(t, err)
	assert.True(t, proto.Equal(&pb.UpdateStatusRequest{Id: 3, Status: "Target"}, f.lastUpdateReq))
	assert.Equal(t, "tok", f.lastToken)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, models.StatusTarget, got.Status)
}

func TestUpdateStatus_MapsErrors(t *testing.T) {
	c := newWithFake(&fakePB{updateErr: status.Error(codes.NotFound, "company not found")})

	_, err := c.UpdateStatus(context.Background(), "tok", 99, models.StatusTarget)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateStatus_NilAccount(t *testing.T) {
	c := newWithFake(&fakePB{updateResp: &pb.UpdateStatusResponse{}})

	_, err := c.UpdateStatus(context.Background(), "tok", 1, models.StatusTarget)
	assert.ErrorIs(t, err, common.ErrUnknown)
}

func TestLogout(t *testing.T) {
	f := &fakePB{}
	c := newWithFake(f)

	require.NoError(t, c.Logout(context.Background(), "tok"))
	assert.Equal(t, "tok", f.lastToken)

	f.logoutErr = status.Error(codes.Unavailable, "down")
	assert.ErrorIs(t, c.Logout(context.Background(), "tok"), common.ErrUnavailable)
}

func TestPing(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := newWithFake(f)
	require.NoError(t, c.Ping(context.Background()))

	f.pingResp = &pb.PingResponse{Status: "DEGRADED"}
	assert.ErrorIs(t, c.Ping(context.Background()), common.ErrUnavailable)

	f.pingErr = status.Error(codes.Unavailable, "down")
	assert.ErrorIs(t, c.Ping(context.Background()), common.ErrUnavailable)
}
