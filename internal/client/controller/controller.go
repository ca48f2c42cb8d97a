// Package controller owns the dashboard's account collection: it loads the
// list once per activation, reconciles status changes by id and derives the
// visible cards from the current criteria.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/salesmatch/internal/client/pipeline"
	"github.com/dmitrijs2005/salesmatch/internal/client/widget"
	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/logging"
	"github.com/dmitrijs2005/salesmatch/internal/models"
)

// State is the lifecycle of the list view.
type State string

const (
	StateLoading         State = "loading"
	StateReady           State = "ready"
	StateUnauthenticated State = "unauthenticated"
	StateFailed          State = "failed"
)

// Service is the backend surface the controller needs.
type Service interface {
	IsAuthenticated() bool
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Account, error)
}

// Notifier receives user-facing outcomes. Implementations must not block.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Change is one requested status change.
type Change struct {
	ID     int64
	Status models.Status
}

type Controller struct {
	mu       sync.Mutex
	state    State
	byID     map[int64]models.Account
	order    []int64
	criteria pipeline.Criteria
	// updating survives reloads; a mark is cleared only when its call returns.
	updating map[int64]bool
	// epoch counts session boundaries. Results issued under an older epoch
	// are dropped.
	epoch uint64

	service  Service
	notifier Notifier
	logger   logging.Logger

	// OnUnauthenticated fires when the backend rejects the session.
	OnUnauthenticated func()
}

func New(s Service, n Notifier, l logging.Logger) *Controller {
	if n == nil {
		n = nopNotifier{}
	}
	if l == nil {
		l = logging.Nop{}
	}
	return &Controller{
		state:    StateLoading,
		byID:     map[int64]models.Account{},
		criteria: pipeline.DefaultCriteria(),
		updating: map[int64]bool{},
		service:  s,
		notifier: n,
		logger:   l.With("module", "controller"),
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Activate loads the collection. Without a session it goes straight to
// StateUnauthenticated. Failures are notified and not retried.
func (c *Controller) Activate(ctx context.Context) error {
	if !c.service.IsAuthenticated() {
		c.setUnauthenticated()
		return common.ErrUnauthorized
	}

	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	list, err := c.service.ListAccounts(ctx)
	if err != nil {
		c.notifier.Error(Message(err))
		if errors.Is(err, common.ErrUnauthorized) {
			c.setUnauthenticated()
		} else {
			c.mu.Lock()
			c.state = StateFailed
			c.mu.Unlock()
		}
		c.logger.Warn(ctx, "load failed", "error", err)
		return err
	}

	c.mu.Lock()
	c.byID = make(map[int64]models.Account, len(list))
	c.order = make([]int64, 0, len(list))
	for _, a := range list {
		if _, dup := c.byID[a.ID]; !dup {
			c.order = append(c.order, a.ID)
		}
		c.byID[a.ID] = a
	}
	c.state = StateReady
	c.mu.Unlock()

	c.logger.Debug(ctx, "accounts loaded", "count", len(list))
	return nil
}

func (c *Controller) setUnauthenticated() {
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.epoch++
	hook := c.OnUnauthenticated
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Reset drops the collection and returns to StateLoading, ready for the next
// activation. Updates still in flight stay marked until they return, but
// their results are no longer applied.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateLoading
	c.epoch++
	c.byID = map[int64]models.Account{}
	c.order = nil
	c.criteria = pipeline.DefaultCriteria()
}

func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Query = q
}

func (c *Controller) SetStatusFilter(f pipeline.StatusFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Status = f
}

func (c *Controller) SetSort(k pipeline.SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Sort = k
}

func (c *Controller) Criteria() pipeline.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// All returns the full collection in backing-store order.
func (c *Controller) All() []models.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allLocked()
}

func (c *Controller) allLocked() []models.Account {
	out := make([]models.Account, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get returns the stored record for id.
func (c *Controller) Get(id int64) (models.Account, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.byID[id]
	return a, ok
}

// Visible runs the pipeline over the current collection and criteria.
func (c *Controller) Visible() []models.Account {
	c.mu.Lock()
	all, crit := c.allLocked(), c.criteria
	c.mu.Unlock()

	return pipeline.Apply(all, crit)
}

// Cards returns the visible accounts with their in-flight flags.
func (c *Controller) Cards() []widget.Card {
	visible := c.Visible()

	c.mu.Lock()
	defer c.mu.Unlock()

	cards := make([]widget.Card, 0, len(visible))
	for _, a := range visible {
		cards = append(cards, widget.Card{Account: a, Updating: c.updating[a.ID]})
	}
	return cards
}

func (c *Controller) Updating(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updating[id]
}

// ChangeStatus asks the backend to change one account's status and, on
// success, replaces the stored record with the backend's copy. Only one
// change per id may be in flight; other ids are independent. A result that
// arrives after the session ended is discarded, including a rejection of the
// old session's token.
func (c *Controller) ChangeStatus(ctx context.Context, id int64, status models.Status) (models.Account, error) {
	c.mu.Lock()
	if c.updating[id] {
		c.mu.Unlock()
		return models.Account{}, fmt.Errorf("account %d: %w", id, common.ErrUpdateInFlight)
	}
	c.updating[id] = true
	epoch := c.epoch
	c.mu.Unlock()

	updated, err := c.service.UpdateStatus(ctx, id, status)

	c.mu.Lock()
	delete(c.updating, id)
	stale := epoch != c.epoch
	c.mu.Unlock()

	if stale {
		c.logger.Debug(ctx, "late status result discarded", "account_id", id, "error", err)
		return models.Account{}, common.ErrSessionEnded
	}

	if err != nil {
		c.notifier.Error(Message(err))
		c.logger.Warn(ctx, "status change failed", "account_id", id, "status", status, "error", err)
		if errors.Is(err, common.ErrUnauthorized) {
			c.setUnauthenticated()
		}
		return models.Account{}, err
	}

	if !c.service.IsAuthenticated() {
		c.logger.Debug(ctx, "late status result discarded", "account_id", id)
		return models.Account{}, common.ErrSessionEnded
	}

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		return models.Account{}, common.ErrSessionEnded
	}
	if _, ok := c.byID[updated.ID]; !ok {
		c.mu.Unlock()
		c.logger.Debug(ctx, "status result for unknown account dropped", "account_id", updated.ID)
		return models.Account{}, fmt.Errorf("account %d: %w", updated.ID, common.ErrNotFound)
	}
	c.byID[updated.ID] = updated
	c.mu.Unlock()

	c.notifier.Success(fmt.Sprintf("Company status updated to %s", updated.Status))
	return updated, nil
}

// ChangeStatuses applies several changes concurrently. Each one is
// reconciled on its own; the returned error joins every failure.
func (c *Controller) ChangeStatuses(ctx context.Context, changes []Change) error {
	errs := make([]error, len(changes))

	var wg sync.WaitGroup
	wg.Add(len(changes))
	for i, ch := range changes {
		go func() {
			defer wg.Done()
			_, errs[i] = c.ChangeStatus(ctx, ch.ID, ch.Status)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Message turns an error into the text shown to the user.
func Message(err error) string {
	switch common.Classify(err) {
	case common.KindInvalidCredentials:
		return "Invalid credentials"
	case common.KindUnauthorized:
		return "Unauthorized"
	case common.KindNotFound:
		return "Company not found"
	}
	if errors.Is(err, common.ErrUnavailable) {
		return "Server unavailable"
	}
	return err.Error()
}
