package proto

import "github.com/dmitrijs2005/salesmatch/internal/models"

// FromAccount converts a domain account to its wire form.
func FromAccount(a models.Account) *Account {
	return &Account{
		Id:         a.ID,
		Name:       a.Name,
		Industry:   a.Industry,
		Revenue:    a.Revenue,
		Employees:  int64(a.Employees),
		Location:   a.Location,
		MatchScore: int64(a.MatchScore),
		Status:     string(a.Status),
	}
}

// ToAccount converts the wire form back, rejecting statuses outside the
// enumeration so no invalid value can reach the client collection.
func ToAccount(a *Account) (models.Account, error) {
	if a == nil {
		return models.Account{}, errNilAccount
	}
	s, err := models.ParseStatus(a.Status)
	if err != nil {
		return models.Account{}, err
	}
	return models.Account{
		ID:         a.Id,
		Name:       a.Name,
		Industry:   a.Industry,
		Revenue:    a.Revenue,
		Employees:  int(a.Employees),
		Location:   a.Location,
		MatchScore: int(a.MatchScore),
		Status:     s,
	}, nil
}
