package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	pb "github.com/dmitrijs2005/salesmatch/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AccountServiceClient
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// NewSalesMatchClient dials endpointURL lazily. A positive timeout bounds
// every call.
func NewSalesMatchClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAccountServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token", common.ErrUnknown)
	}
	return resp.Token, nil
}

func (s *GRPCClient) ListAccounts(ctx context.Context, token string) ([]models.Account, error) {
	ctx, cancel := s.callContext(withAccessToken(ctx, token))
	defer cancel()

	resp, err := s.client.ListAccounts(ctx, &pb.ListAccountsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.Account, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		acc, err := pb.ToAccount(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrUnknown, err)
		}
		out = append(out, acc)
	}
	return out, nil
}

func (s *GRPCClient) UpdateStatus(ctx context.Context, token string, id int64, st models.Status) (models.Account, error) {
	ctx, cancel := s.callContext(withAccessToken(ctx, token))
	defer cancel()

	resp, err := s.client.UpdateStatus(ctx, &pb.UpdateStatusRequest{Id: id, Status: string(st)})
	if err != nil {
		return models.Account{}, s.mapError(err)
	}

	acc, err := pb.ToAccount(resp.Account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %v", common.ErrUnknown, err)
	}
	return acc, nil
}

func (s *GRPCClient) Logout(ctx context.Context, token string) error {
	ctx, cancel := s.callContext(withAccessToken(ctx, token))
	defer cancel()

	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return common.ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrUnauthorized
	case codes.NotFound:
		return common.ErrNotFound
	case codes.InvalidArgument:
		if strings.HasPrefix(st.Message(), common.ErrInvalidStatus.Error()) {
			return fmt.Errorf("%w: %s", common.ErrInvalidStatus, strings.TrimPrefix(st.Message(), common.ErrInvalidStatus.Error()+": "))
		}
		return common.ErrInvalidCredentials
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", common.ErrUnknown, err)
	}
}
