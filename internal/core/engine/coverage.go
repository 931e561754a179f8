package engine

import (
	"sort"
	"strings"

	"resonate/internal/core/domain"
)

// Summarize computes the combined coverage of the selected publishers. It is
// recomputed from scratch on every call: selection order and duplicates do
// not change the result, and unknown publisher ids are ignored.
func Summarize(selection []string, publishers []domain.PublisherProfile, city *domain.CityConfig) domain.CoverageSummary {
	return summarize(NewIndex(city), city, selection, publishers)
}

func summarize(idx *Index, city *domain.CityConfig, selection []string, publishers []domain.PublisherProfile) domain.CoverageSummary {
	profiles := profilesByID(publishers)

	ids := make([]string, 0, len(selection))
	seen := make(map[string]struct{}, len(selection))
	for _, id := range selection {
		if _, dup := seen[id]; dup {
			continue
		}
		if _, ok := profiles[id]; !ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	units := make(map[string]struct{})
	langs := make(map[string]struct{})
	var aggregate, uncapped int64
	for _, id := range ids {
		p := profiles[id]
		populated := false
		for u := range idx.Reach(p) {
			units[u] = struct{}{}
			if unit, ok := idx.Unit(u); ok && unit.Population > 0 {
				populated = true
			}
		}
		for _, l := range p.Languages {
			langs[strings.ToLower(l)] = struct{}{}
		}
		aggregate += p.AudienceSize
		if !populated {
			uncapped += p.AudienceSize
		}
	}

	summary := domain.CoverageSummary{
		Units:             make([]string, 0, len(units)),
		Languages:         orderedLanguages(city, langs),
		UniqueUnits:       len(units),
		TotalUnits:        idx.Len(),
		AggregateAudience: aggregate,
	}

	// The estimate is capped by the population of covered units that have
	// one. Publishers reaching only units without a population count in
	// full.
	var population int64
	for _, u := range idx.units {
		if _, ok := units[u.ID]; !ok {
			continue
		}
		summary.Units = append(summary.Units, u.ID)
		population += u.Population
	}
	summary.EstimatedAudience = min(aggregate, population+uncapped)
	return summary
}

// orderedLanguages lists language codes in the city's catalog order, with
// codes outside the catalog appended alphabetically.
func orderedLanguages(city *domain.CityConfig, langs map[string]struct{}) []string {
	out := make([]string, 0, len(langs))
	known := make(map[string]struct{}, len(city.Languages))
	for _, l := range city.Languages {
		code := strings.ToLower(l.Code)
		known[code] = struct{}{}
		if _, ok := langs[code]; ok {
			out = append(out, l.Code)
		}
	}
	var extra []string
	for code := range langs {
		if _, ok := known[code]; !ok {
			extra = append(extra, code)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
