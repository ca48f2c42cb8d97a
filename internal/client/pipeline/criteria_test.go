package pipeline

import (
	"testing"

	"github.com/dmitrijs2005/salesmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFilter(t *testing.T) {
	for _, v := range []string{"all", "None", "Target", "Blacklist"} {
		f, err := ParseStatusFilter(v)
		require.NoError(t, err, v)
		assert.Equal(t, StatusFilter(v), f)
	}

	for _, v := range []string{"", "All", "target", "x"} {
		_, err := ParseStatusFilter(v)
		assert.ErrorIs(t, err, ErrInvalidStatusFilter, v)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseSortKey("revenue")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestStatusFilter_Matches(t *testing.T) {
	assert.True(t, FilterAll.Matches(models.StatusBlacklist))
	assert.True(t, StatusFilter("Target").Matches(models.StatusTarget))
	assert.False(t, StatusFilter("Target").Matches(models.StatusNone))
}

func TestDefaultCriteria(t *testing.T) {
	assert.Equal(t, Criteria{Query: "", Status: FilterAll, Sort: SortByMatchScore}, DefaultCriteria())
}
