package pipeline

import (
	"math"
	"testing"

	"github.com/dmitrijs2005/salesmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) []models.Account {
	t.Helper()
	s, err := models.Seed()
	require.NoError(t, err)
	return s
}

func names(list []models.Account) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}

func TestApply_DefaultCriteriaSortsByScore(t *testing.T) {
	got := Apply(seed(t), DefaultCriteria())

	require.Len(t, got, 8)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].MatchScore, got[i].MatchScore)
	}
	assert.Equal(t, "Acme Corporation", got[0].Name)
	assert.Equal(t, "AgriTech Solutions", got[7].Name)
}

func TestApply_QueryMatchesNameIndustryLocation(t *testing.T) {
	all := seed(t)

	got := Apply(all, Criteria{Query: "tech", Status: FilterAll, Sort: SortByMatchScore})
	assert.Equal(t, []string{"Acme Corporation", "TechGrowth Inc", "AgriTech Solutions"}, names(got))

	got = Apply(all, Criteria{Query: "GLOBAL", Status: FilterAll, Sort: SortByMatchScore})
	assert.Equal(t, []string{"Global Solutions"}, names(got))

	got = Apply(all, Criteria{Query: "boston", Status: FilterAll, Sort: SortByMatchScore})
	assert.Equal(t, []string{"Financial Partners"}, names(got))

	got = Apply(all, Criteria{Query: "  retail  ", Status: FilterAll, Sort: SortByMatchScore})
	assert.Equal(t, []string{"Innovative Retail"}, names(got))
}

func TestApply_WhitespaceQueryIsNoFilter(t *testing.T) {
	all := seed(t)

	assert.Len(t, Apply(all, Criteria{Query: "   \t", Status: FilterAll, Sort: SortByName}), len(all))
}

func TestApply_StatusFilterWithNoMatchesIsEmpty(t *testing.T) {
	got := Apply(seed(t), Criteria{Status: StatusFilter(models.StatusTarget), Sort: SortByMatchScore})

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_StatusFilter(t *testing.T) {
	all := seed(t)
	all[2] = all[2].WithStatus(models.StatusTarget)
	all[5] = all[5].WithStatus(models.StatusBlacklist)

	got := Apply(all, Criteria{Status: StatusFilter(models.StatusTarget), Sort: SortByMatchScore})
	assert.Equal(t, []string{"Global Solutions"}, names(got))

	got = Apply(all, Criteria{Status: StatusFilter(models.StatusNone), Sort: SortByMatchScore})
	assert.Len(t, got, 6)
}

func TestApply_SortByName(t *testing.T) {
	got := Apply(seed(t), Criteria{Status: FilterAll, Sort: SortByName})

	assert.Equal(t, []string{
		"Acme Corporation",
		"AgriTech Solutions",
		"Financial Partners",
		"Global Solutions",
		"Healthcare Systems",
		"Innovative Retail",
		"Manufacturing Pro",
		"TechGrowth Inc",
	}, names(got))
}

func TestApply_SortByIndustryIsStable(t *testing.T) {
	got := Apply(seed(t), Criteria{Status: FilterAll, Sort: SortByIndustry})

	// Both Technology accounts keep their collection order.
	assert.Equal(t, []string{
		"AgriTech Solutions",
		"Global Solutions",
		"Financial Partners",
		"Healthcare Systems",
		"Manufacturing Pro",
		"Innovative Retail",
		"Acme Corporation",
		"TechGrowth Inc",
	}, names(got))
}

func TestApply_ScoreTiesKeepCollectionOrder(t *testing.T) {
	all := []models.Account{
		{ID: 1, Name: "b", MatchScore: 70},
		{ID: 2, Name: "a", MatchScore: 90},
		{ID: 3, Name: "c", MatchScore: 70},
		{ID: 4, Name: "d", MatchScore: 70},
	}

	got := Apply(all, DefaultCriteria())
	ids := []int64{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []int64{2, 1, 3, 4}, ids)
}

func TestApply_ExtremeScores(t *testing.T) {
	list := []models.Account{
		{ID: 1, Name: "Low", MatchScore: math.MinInt},
		{ID: 2, Name: "High", MatchScore: math.MaxInt},
		{ID: 3, Name: "Zero", MatchScore: 0},
		{ID: 4, Name: "Negative", MatchScore: -1},
	}

	got := Apply(list, Criteria{Sort: SortByMatchScore})

	assert.Equal(t, []string{"High", "Zero", "Negative", "Low"}, names(got))
}

func TestApply_SubsetAndIdempotent(t *testing.T) {
	all := seed(t)
	all[0] = all[0].WithStatus(models.StatusTarget)
	all[1] = all[1].WithStatus(models.StatusTarget)

	byID := make(map[int64]models.Account, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}

	for _, q := range []string{"", "tech", "s", "zzz"} {
		for _, f := range StatusFilters {
			for _, k := range SortKeys {
				c := Criteria{Query: q, Status: f, Sort: k}

				once := Apply(all, c)
				twice := Apply(once, c)
				assert.Equal(t, once, twice, "%+v", c)

				for _, a := range once {
					assert.Equal(t, byID[a.ID], a, "result must be a subset of the input")
					assert.True(t, f.Matches(a.Status))
				}
			}
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	all := seed(t)
	before := append([]models.Account(nil), all...)

	_ = Apply(all, Criteria{Status: FilterAll, Sort: SortByName})

	assert.Equal(t, before, all)
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, DefaultCriteria())
	require.NotNil(t, got)
	assert.Empty(t, got)
}
