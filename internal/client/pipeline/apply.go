package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/salesmatch/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply returns the accounts matching c in display order. It never modifies
// all and always returns a fresh, non-nil slice. Unknown filter or sort
// values behave like FilterAll and insertion order respectively.
func Apply(all []models.Account, c Criteria) []models.Account {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(c.Query))

	out := make([]models.Account, 0, len(all))
	for _, a := range all {
		if query != "" && !matchesQuery(fold, a, query) {
			continue
		}
		if c.Status != "" && !c.Status.Matches(a.Status) {
			continue
		}
		out = append(out, a)
	}

	sortAccounts(out, c.Sort)
	return out
}

func matchesQuery(fold cases.Caser, a models.Account, query string) bool {
	return strings.Contains(fold.String(a.Name), query) ||
		strings.Contains(fold.String(a.Industry), query) ||
		strings.Contains(fold.String(a.Location), query)
}

// sortAccounts sorts in place. Equal keys keep their relative order.
func sortAccounts(list []models.Account, key SortKey) {
	switch key {
	case SortByMatchScore:
		slices.SortStableFunc(list, func(a, b models.Account) int {
			return cmp.Compare(b.MatchScore, a.MatchScore)
		})
	case SortByName, SortByIndustry:
		col := collate.New(language.English)
		field := func(a models.Account) string { return a.Name }
		if key == SortByIndustry {
			field = func(a models.Account) string { return a.Industry }
		}
		slices.SortStableFunc(list, func(a, b models.Account) int {
			return col.CompareString(field(a), field(b))
		})
	}
}
