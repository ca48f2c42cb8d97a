// Package accounts serves the account collection of the backing store.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/salesmatch/internal/models"
	accountsrepo "github.com/dmitrijs2005/salesmatch/internal/server/repositories/accounts"
)

// Recorder receives applied status changes for metrics.
type Recorder interface {
	RecordStatusChange(status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordStatusChange(string) {}

type Service struct {
	repo    accountsrepo.Repository
	metrics Recorder
}

func NewService(repo accountsrepo.Repository, m Recorder) *Service {
	if m == nil {
		m = nopRecorder{}
	}
	return &Service{repo: repo, metrics: m}
}

// List returns every account in backing-store order.
func (s *Service) List(ctx context.Context) ([]models.Account, error) {
	return s.repo.List(ctx)
}

// UpdateStatus validates status before touching the store and returns the
// stored post-update record.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (models.Account, error) {
	st, err := models.ParseStatus(status)
	if err != nil {
		return models.Account{}, err
	}

	a, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return models.Account{}, err
	}

	s.metrics.RecordStatusChange(string(a.Status))
	return a, nil
}
