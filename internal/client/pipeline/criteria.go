// Package pipeline derives the visible account list from the full
// collection: text filter, status filter, then a stable sort.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/salesmatch/internal/models"
)

var (
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidSortKey      = errors.New("invalid sort key")
)

// StatusFilter is "all" or one of the account statuses.
type StatusFilter string

const FilterAll StatusFilter = "all"

// StatusFilters lists every filter choice in display order.
var StatusFilters = []StatusFilter{
	FilterAll,
	StatusFilter(models.StatusNone),
	StatusFilter(models.StatusTarget),
	StatusFilter(models.StatusBlacklist),
}

func ParseStatusFilter(v string) (StatusFilter, error) {
	if v == string(FilterAll) {
		return FilterAll, nil
	}
	if !models.Status(v).Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, v)
	}
	return StatusFilter(v), nil
}

// Matches reports whether s passes the filter.
func (f StatusFilter) Matches(s models.Status) bool {
	return f == FilterAll || models.Status(f) == s
}

type SortKey string

const (
	SortByMatchScore SortKey = "matchScore"
	SortByName       SortKey = "name"
	SortByIndustry   SortKey = "industry"
)

var SortKeys = []SortKey{SortByMatchScore, SortByName, SortByIndustry}

func ParseSortKey(v string) (SortKey, error) {
	switch k := SortKey(v); k {
	case SortByMatchScore, SortByName, SortByIndustry:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, v)
}

// Criteria is the user's current view selection.
type Criteria struct {
	Query  string
	Status StatusFilter
	Sort   SortKey
}

// DefaultCriteria is no query, every status, best match first.
func DefaultCriteria() Criteria {
	return Criteria{Query: "", Status: FilterAll, Sort: SortByMatchScore}
}
