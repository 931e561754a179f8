package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Tier separates units inside the city proper from the surrounding suburbs.
type Tier string

const (
	TierPrimary Tier = "primary"
	TierSuburb  Tier = "suburb"
)

// GeoUnit is an atomic addressable area: a neighborhood, a community area
// or a suburb.
type GeoUnit struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
	Tier  Tier   `json:"tier,omitempty" yaml:"tier,omitempty"`

	// Population is optional. When every covered unit has one, coverage
	// estimates are capped by it.
	Population int64 `json:"population,omitempty" yaml:"population,omitempty"`
}

// IsSuburb reports whether the unit belongs to the suburb tier.
func (u GeoUnit) IsSuburb() bool {
	return u.Tier == TierSuburb
}

// GeographyCatalog lists the units of a city. Groups holds the declared
// group ("side") names in display order; units reference them by name.
type GeographyCatalog struct {
	Groups []string  `json:"groups,omitempty" yaml:"groups,omitempty"`
	Units  []GeoUnit `json:"units" yaml:"units"`
}

// UnitIDs returns every unit id in catalog order.
func (g GeographyCatalog) UnitIDs() []string {
	ids := make([]string, len(g.Units))
	for i, u := range g.Units {
		ids[i] = u.ID
	}
	return ids
}

// CheckGroups verifies that every unit references a declared group.
func (g GeographyCatalog) CheckGroups() error {
	declared := make(map[string]struct{}, len(g.Groups))
	for _, name := range g.Groups {
		declared[name] = struct{}{}
	}
	for _, u := range g.Units {
		if u.Group == "" {
			continue
		}
		if _, ok := declared[u.Group]; !ok {
			return fmt.Errorf("unit %q references unknown group %q", u.ID, u.Group)
		}
	}
	return nil
}

func (g GeographyCatalog) validate() error {
	if len(g.Units) == 0 {
		return errors.New("catalog has no units")
	}
	seenGroups := make(map[string]struct{}, len(g.Groups))
	for _, name := range g.Groups {
		if strings.TrimSpace(name) == "" {
			return errors.New("group name must not be empty")
		}
		if _, dup := seenGroups[name]; dup {
			return fmt.Errorf("duplicate group %q", name)
		}
		seenGroups[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(g.Units))
	for _, u := range g.Units {
		if strings.TrimSpace(u.ID) == "" {
			return errors.New("unit id must not be empty")
		}
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("duplicate unit id %q", u.ID)
		}
		seen[u.ID] = struct{}{}
		switch u.Tier {
		case "", TierPrimary, TierSuburb:
		default:
			return fmt.Errorf("unit %q has invalid tier %q", u.ID, u.Tier)
		}
		if u.Population < 0 {
			return fmt.Errorf("unit %q has negative population", u.ID)
		}
	}
	return g.CheckGroups()
}
