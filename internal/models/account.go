// Package models holds the company record shared by the backing store and
// the dashboard client, together with its status enumeration and seed data.
package models

import (
	"fmt"

	"github.com/dmitrijs2005/salesmatch/internal/common"
)

// Status is the pipeline tag a user puts on an account.
type Status string

const (
	StatusNone      Status = "None"
	StatusTarget    Status = "Target"
	StatusBlacklist Status = "Blacklist"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusNone, StatusTarget, StatusBlacklist}

// Valid reports whether s is one of the three enumerated values.
func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusTarget, StatusBlacklist:
		return true
	}
	return false
}

// ParseStatus matches exactly; "target" is not a status.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidStatus, v)
	}
	return s, nil
}

// Account is a company with its computed match score and pipeline status.
// Revenue is a preformatted display string and is never parsed.
type Account struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Industry   string `json:"industry" yaml:"industry"`
	Revenue    string `json:"revenue" yaml:"revenue"`
	Employees  int    `json:"employees" yaml:"employees"`
	Location   string `json:"location" yaml:"location"`
	MatchScore int    `json:"matchScore" yaml:"match_score"`
	Status     Status `json:"status" yaml:"status"`
}

// WithStatus returns a copy of a carrying status s.
func (a Account) WithStatus(s Status) Account {
	a.Status = s
	return a
}

// Band is the display bucket of a match score.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// ScoreBand buckets a match score: 80 and above is high, 60 and above medium.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}
