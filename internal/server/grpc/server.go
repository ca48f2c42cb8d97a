// Package grpc exposes the backing store over gRPC as
// salesmatch.AccountService.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/logging"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	pb "github.com/dmitrijs2005/salesmatch/internal/proto"
	"github.com/dmitrijs2005/salesmatch/internal/server/auth"
	"github.com/dmitrijs2005/salesmatch/internal/server/config"
	"google.golang.org/grpc"
)

// SessionService is the part of sessions.Service the transport needs.
type SessionService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Validate(token string) (*auth.Claims, error)
	Logout(ctx context.Context) error
}

// AccountService is the part of accounts.Service the transport needs.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	UpdateStatus(ctx context.Context, id int64, status string) (models.Account, error)
}

// RPCRecorder counts handled calls by method and status code.
type RPCRecorder interface {
	RecordRPC(method, code string)
}

type nopRecorder struct{}

func (nopRecorder) RecordRPC(string, string) {}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address       string
	sessions      SessionService
	accounts      AccountService
	metrics       RPCRecorder
	logger        logging.Logger
	readLatency   time.Duration
	updateLatency time.Duration
	sleep         func(ctx context.Context, d time.Duration) error
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, ss SessionService, as AccountService, m RPCRecorder) *GRPCServer {
	if m == nil {
		m = nopRecorder{}
	}
	return &GRPCServer{
		address:       cfg.EndpointAddrGRPC,
		logger:        l.With("module", "grpc_server"),
		sessions:      ss,
		accounts:      as,
		metrics:       m,
		readLatency:   cfg.ReadLatency,
		updateLatency: cfg.UpdateLatency,
		sleep:         sleepCtx,
	}
}

// NewServer builds the grpc.Server with the interceptor chain and the
// service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.latencyInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterAccountServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
