package grpc

import (
	"context"
	"path"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	pb "github.com/dmitrijs2005/salesmatch/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// sessionIDFrom returns the session id stored by accessTokenInterceptor.
func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// protected lists the methods that require the active session token.
var protected = map[string]bool{
	pb.AccountService_ListAccounts_FullMethodName: true,
	pb.AccountService_UpdateStatus_FullMethodName: true,
}

func (s *GRPCServer) latencyFor(method string) time.Duration {
	switch method {
	case pb.AccountService_Authenticate_FullMethodName, pb.AccountService_ListAccounts_FullMethodName:
		return s.readLatency
	case pb.AccountService_UpdateStatus_FullMethodName:
		return s.updateLatency
	}
	return 0
}

// latencyInterceptor delays calls the way a remote backend would. The delay
// runs before authorization so an unauthorized call is as slow as a good one.
func (s *GRPCServer) latencyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := s.sleep(ctx, s.latencyFor(info.FullMethod)); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protected[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := s.sessions.Validate(accessToken)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Unauthenticated, common.ErrUnauthorized.Error())
	}

	ctx = context.WithValue(ctx, sessionIDKey, claims.SessionID())
	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	s.metrics.RecordRPC(path.Base(info.FullMethod), status.Code(err).String())
	return resp, err
}
