package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/salesmatch/internal/client/controller"
	"github.com/dmitrijs2005/salesmatch/internal/client/pipeline"
	"github.com/dmitrijs2005/salesmatch/internal/client/widget"
	"github.com/dmitrijs2005/salesmatch/internal/common"
)

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

// List shows the accounts that pass the current criteria, loading the
// collection first if needed.
func (a *App) List(ctx context.Context) error {
	if a.controller.State() != controller.StateReady {
		if err := a.controller.Activate(ctx); err != nil {
			return err
		}
	}
	return a.render()
}

func (a *App) render() error {
	cards := a.controller.Cards()
	c := a.controller.Criteria()

	fmt.Fprintf(a.out, "Showing %d of %d (search %q, filter %s, sort %s)\n",
		len(cards), len(a.controller.All()), c.Query, c.Status, c.Sort)

	return widget.RenderList(a.out, cards)
}

// Search sets the free-text query. Without arguments it clears the query.
func (a *App) Search(ctx context.Context, args []string) error {
	a.controller.SetQuery(strings.Join(args, " "))
	return a.List(ctx)
}

func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("filter <all|None|Target|Blacklist>")
	}

	f, err := pipeline.ParseStatusFilter(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.controller.SetStatusFilter(f)
	return a.List(ctx)
}

func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("sort <matchScore|name|industry>")
	}

	k, err := pipeline.ParseSortKey(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.controller.SetSort(k)
	return a.List(ctx)
}

// Show renders one account from the loaded collection.
func (a *App) Show(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	acc, ok := a.controller.Get(id)
	if !ok {
		fmt.Fprintln(a.out, "Company not found")
		return common.ErrNotFound
	}

	card := widget.Card{Account: acc, Updating: a.controller.Updating(id)}
	if err := card.Render(a.out); err != nil {
		return err
	}

	cmds := card.Commands()
	if len(cmds) == 0 {
		return nil
	}
	names := make([]string, 0, len(cmds))
	for _, s := range cmds {
		names = append(names, string(s))
	}
	_, err = fmt.Fprintf(a.out, "%s: status %d <%s>\n", card.ButtonLabel(), id, strings.Join(names, "|"))
	return err
}

func parseID(v string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid company id %q", v)
	}
	return id, nil
}
