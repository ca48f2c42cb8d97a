// Package accounts provides the backing store of the account dataset: an
// in-memory implementation and a PostgreSQL one. Both own the seed dataset
// and can restore it through Reset.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/salesmatch/internal/models"
)

// Repository is the single source of truth for account records.
//
// List returns the full collection in insertion order. UpdateStatus returns
// the stored post-update record, or common.ErrNotFound for an unknown id.
// Reset discards every status change and restores the seed values.
type Repository interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (models.Account, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Account, error)
	Reset(ctx context.Context) error
}
