package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesmatch/internal/client/controller"
	"github.com/dmitrijs2005/salesmatch/internal/client/widget"
)

const statusUsage = "status <id> <None|Target|Blacklist> [<id> <status> ...]"

// Status changes the status of one or more accounts. Each pair is checked
// against its card before anything is sent; several pairs are applied
// concurrently and reconciled independently.
func (a *App) Status(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return usage(statusUsage)
	}

	changes := make([]controller.Change, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		id, err := parseID(args[i])
		if err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}

		acc, _ := a.controller.Get(id)
		card := widget.Card{Account: acc, Updating: a.controller.Updating(id)}
		status, err := card.Command(args[i+1])
		if err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}

		changes = append(changes, controller.Change{ID: id, Status: status})
	}

	if len(changes) == 1 {
		_, err := a.controller.ChangeStatus(ctx, changes[0].ID, changes[0].Status)
		return err
	}
	return a.controller.ChangeStatuses(ctx, changes)
}
