// Package widget renders a single account as a terminal card and exposes the
// status commands the card offers.
package widget

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EmptyListText is shown when no account passes the current criteria.
const EmptyListText = "No companies found matching your criteria"

const cardWidth = 46

var (
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(cardWidth)
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	badgeStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15"))

	bandColors = map[models.Band]lipgloss.Color{
		models.BandHigh:   lipgloss.Color("34"),
		models.BandMedium: lipgloss.Color("214"),
		models.BandLow:    lipgloss.Color("160"),
	}
	statusColors = map[models.Status]lipgloss.Color{
		models.StatusTarget:    lipgloss.Color("28"),
		models.StatusBlacklist: lipgloss.Color("124"),
	}
)

// Card is one account plus whether a status change for it is in flight.
type Card struct {
	Account  models.Account
	Updating bool
}

// Commands lists the status commands the card offers. While an update is in
// flight it offers none.
func (c Card) Commands() []models.Status {
	if c.Updating {
		return nil
	}
	return slices.Clone(models.Statuses)
}

// Command validates a status command typed by the user against the card.
func (c Card) Command(v string) (models.Status, error) {
	if c.Updating {
		return "", common.ErrUpdateInFlight
	}
	return models.ParseStatus(v)
}

// ButtonLabel is the caption of the status menu trigger.
func (c Card) ButtonLabel() string {
	if c.Updating {
		return "Updating..."
	}
	return "Update Status"
}

// FormatEmployees groups digits the way en-US does: 2500 → "2,500".
func FormatEmployees(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

func scoreBadge(score int) string {
	return badgeStyle.Background(bandColors[models.ScoreBand(score)]).Render(fmt.Sprintf("%d%%", score))
}

func statusBadge(s models.Status) string {
	color, ok := statusColors[s]
	if !ok {
		return mutedStyle.Render("[" + string(s) + "]")
	}
	return badgeStyle.Background(color).Render(string(s))
}

// View returns the rendered card.
func (c Card) View() string {
	a := c.Account

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Width(cardWidth-10).Render(fmt.Sprintf("#%d %s", a.ID, a.Name)),
		scoreBadge(a.MatchScore),
	)

	body := strings.Join([]string{
		"Industry:  " + a.Industry,
		"Revenue:   " + a.Revenue + " Revenue",
		"Employees: " + FormatEmployees(a.Employees) + " Employees",
		"Location:  " + a.Location,
	}, "\n")

	footer := statusBadge(a.Status) + "  " + mutedStyle.Render(c.ButtonLabel())

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
}

// Render writes the card to w.
func (c Card) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.View())
	return err
}

// RenderList writes every card, or EmptyListText when there are none.
func RenderList(w io.Writer, cards []Card) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, EmptyListText)
		return err
	}
	for _, c := range cards {
		if err := c.Render(w); err != nil {
			return err
		}
	}
	return nil
}
