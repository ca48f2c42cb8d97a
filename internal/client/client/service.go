// Package client is the dashboard's transport to the backing store. It
// speaks gRPC and translates status codes into the common error taxonomy.
package client

import (
	"context"

	"github.com/dmitrijs2005/salesmatch/internal/models"
)

// Client is the remote API. Calls that need a session take its token
// explicitly; the session gate owns the token.
type Client interface {
	Close() error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ListAccounts(ctx context.Context, token string) ([]models.Account, error)
	UpdateStatus(ctx context.Context, token string, id int64, status models.Status) (models.Account, error)
	Logout(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}
