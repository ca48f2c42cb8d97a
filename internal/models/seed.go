package models

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Accounts []Account `yaml:"accounts"`
}

// Seed returns the built-in demo dataset.
func Seed() ([]Account, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads a seed dataset from a YAML file. An empty path means the
// built-in dataset.
func LoadSeed(path string) ([]Account, error) {
	if path == "" {
		return Seed()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(b)
}

// ParseSeed decodes and validates a YAML seed document. Missing statuses
// default to None; ids must be positive and unique.
func ParseSeed(b []byte) ([]Account, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[int64]struct{}, len(f.Accounts))
	for i := range f.Accounts {
		a := &f.Accounts[i]
		if a.ID <= 0 {
			return nil, fmt.Errorf("seed account %q: id must be positive", a.Name)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("seed account %d: duplicate id", a.ID)
		}
		seen[a.ID] = struct{}{}

		if a.Employees < 0 {
			return nil, fmt.Errorf("seed account %d: negative employee count", a.ID)
		}
		if a.Status == "" {
			a.Status = StatusNone
		}
		if !a.Status.Valid() {
			return nil, fmt.Errorf("seed account %d: %w: %q", a.ID, common.ErrInvalidStatus, a.Status)
		}
	}
	return f.Accounts, nil
}
