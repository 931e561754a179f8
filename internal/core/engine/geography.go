package engine

import (
	"resonate/internal/core/domain"
)

// Index is a lookup structure over a city's geography catalog. It is built
// once per city and is safe for concurrent reads.
type Index struct {
	units    []domain.GeoUnit
	position map[string]int
}

// NewIndex indexes the catalog of city.
func NewIndex(city *domain.CityConfig) *Index {
	idx := &Index{
		units:    city.Geography.Units,
		position: make(map[string]int, len(city.Geography.Units)),
	}
	for i, u := range city.Geography.Units {
		idx.position[u.ID] = i
	}
	return idx
}

// Len returns the number of units in the catalog.
func (x *Index) Len() int {
	return len(x.units)
}

// Contains reports whether id is a unit of the catalog.
func (x *Index) Contains(id string) bool {
	_, ok := x.position[id]
	return ok
}

// Unit returns the unit with the given id.
func (x *Index) Unit(id string) (domain.GeoUnit, bool) {
	i, ok := x.position[id]
	if !ok {
		return domain.GeoUnit{}, false
	}
	return x.units[i], true
}

// GroupOf returns the declared group of a unit, or "" when it has none.
func (x *Index) GroupOf(id string) string {
	u, _ := x.Unit(id)
	return u.Group
}

// All returns every unit id in catalog order.
func (x *Index) All() []string {
	ids := make([]string, len(x.units))
	for i, u := range x.units {
		ids[i] = u.ID
	}
	return ids
}

// Ordered filters ids down to known units, removes duplicates and returns
// them in catalog order.
func (x *Index) Ordered(ids []string) []string {
	set := x.Set(ids)
	out := make([]string, 0, len(set))
	for _, u := range x.units {
		if _, ok := set[u.ID]; ok {
			out = append(out, u.ID)
		}
	}
	return out
}

// Set converts ids into a membership set of known units.
func (x *Index) Set(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if x.Contains(id) {
			set[id] = struct{}{}
		}
	}
	return set
}

// Reach returns the set of catalog units reached by a publisher. Citywide
// reach expands to the whole catalog.
func (x *Index) Reach(p domain.PublisherProfile) map[string]struct{} {
	if p.Citywide {
		return x.Set(x.All())
	}
	return x.Set(p.ReachUnits)
}

// Expand returns the units targeted by an audience. Citywide wins over any
// explicit selection.
func (x *Index) Expand(audience domain.AudienceSpec) []string {
	if audience.Citywide {
		return x.All()
	}
	return x.Ordered(audience.Units)
}

// UnitsFor expands an audience selection into GeoUnit ids in catalog order.
// When citywide is set every unit is returned and the explicit selection is
// ignored.
func UnitsFor(city *domain.CityConfig, audience domain.AudienceSpec) []string {
	return NewIndex(city).Expand(audience)
}

// GroupsFor arranges a city's units into display groups. Primary units form
// a single implicit group when at most one distinct group name is in use,
// otherwise one group per declared name in declaration order. Suburb-tier
// units always go to a trailing "Key Suburbs" group.
func GroupsFor(city *domain.CityConfig) ([]domain.GeoGroup, error) {
	catalog := city.Geography
	if err := catalog.CheckGroups(); err != nil {
		return nil, &domain.ConfigError{City: city.ID, Field: "geography", Reason: err.Error()}
	}

	var (
		primary  []domain.GeoUnit
		suburbs  []domain.GeoUnit
		distinct = make(map[string]struct{})
	)
	for _, u := range catalog.Units {
		if u.IsSuburb() {
			suburbs = append(suburbs, u)
			continue
		}
		primary = append(primary, u)
		if u.Group != "" {
			distinct[u.Group] = struct{}{}
		}
	}

	var groups []domain.GeoGroup
	switch {
	case len(primary) == 0:
	case len(distinct) <= 1:
		groups = append(groups, domain.GeoGroup{Implicit: true, Units: primary})
	default:
		byName := make(map[string][]domain.GeoUnit, len(catalog.Groups))
		var ungrouped []domain.GeoUnit
		for _, u := range primary {
			if u.Group == "" {
				ungrouped = append(ungrouped, u)
				continue
			}
			byName[u.Group] = append(byName[u.Group], u)
		}
		for _, name := range catalog.Groups {
			if units := byName[name]; len(units) > 0 {
				groups = append(groups, domain.GeoGroup{Name: name, Units: units})
			}
		}
		if len(ungrouped) > 0 {
			groups = append(groups, domain.GeoGroup{Implicit: true, Units: ungrouped})
		}
	}

	if len(suburbs) > 0 {
		groups = append(groups, domain.GeoGroup{Name: domain.KeySuburbsGroup, Suburb: true, Units: suburbs})
	}
	return groups, nil
}
