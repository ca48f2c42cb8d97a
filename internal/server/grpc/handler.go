package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	pb "github.com/dmitrijs2005/salesmatch/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes. Messages of the
// user-facing kinds are kept verbatim so the client can show them.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.InvalidArgument, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, common.ErrNotFound.Error())
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrUnauthorized.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, common.ErrInternal.Error())
	}
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	token, err := s.sessions.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Info(ctx, "Login rejected", "username", req.Username, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Logged in", "username", req.Username)
	return &pb.AuthenticateResponse{Message: "Login successful", Token: token}, nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	list, err := s.accounts.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "List failed", "error", err)
		return nil, toStatus(err)
	}

	out := make([]*pb.Account, 0, len(list))
	for _, a := range list {
		out = append(out, pb.FromAccount(a))
	}
	return &pb.ListAccountsResponse{Accounts: out}, nil
}

func (s *GRPCServer) UpdateStatus(ctx context.Context, req *pb.UpdateStatusRequest) (*pb.UpdateStatusResponse, error) {
	a, err := s.accounts.UpdateStatus(ctx, req.Id, req.Status)
	if err != nil {
		s.logger.Warn(ctx, "Status update failed", "account_id", req.Id, "status", req.Status, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Status updated", "account_id", a.ID, "status", a.Status, "session", sessionIDFrom(ctx))
	return &pb.UpdateStatusResponse{Account: pb.FromAccount(a)}, nil
}

// Logout needs no token: ending the demo session is always allowed and
// always restores the seed dataset.
func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.sessions.Logout(ctx); err != nil {
		s.logger.Error(ctx, "Logout failed", "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Logged out, dataset restored")
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
