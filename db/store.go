package db

import (
	"github.com/dylan-dingjan/bebetterbot/model"
)

// Store adapts the package-level case functions to the interfaces the relay
// and review packages accept.
type Store struct{}

func (Store) GetCase(caseID string) (*model.Submission, error) {
	return GetCase(caseID)
}

func (Store) SettleCase(caseID, status string) (bool, error) {
	return SettleCase(caseID, status)
}
