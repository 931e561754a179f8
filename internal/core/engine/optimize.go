package engine

import (
	"sort"

	"resonate/internal/core/domain"
)

// MixOptimizer assembles a publisher mix under a budget. Selection is a
// greedy marginal-coverage heuristic followed by a refinement pass; it is
// an approximation of the (NP-hard) maximum coverage problem, not an exact
// optimum.
type MixOptimizer struct {
	city     *domain.CityConfig
	index    *Index
	minScore float64
	target   map[string]struct{}
}

// OptimizeOption configures a MixOptimizer.
type OptimizeOption func(*MixOptimizer)

// WithMinScore excludes candidates whose overall score is below s.
func WithMinScore(s float64) OptimizeOption {
	return func(o *MixOptimizer) {
		o.minScore = s
	}
}

// WithTarget restricts coverage to the given units, typically the expanded
// campaign selection. An empty list means the whole catalog.
func WithTarget(units []string) OptimizeOption {
	return func(o *MixOptimizer) {
		if len(units) > 0 {
			o.target = o.index.Set(units)
		}
	}
}

// NewMixOptimizer builds an optimizer for city.
func NewMixOptimizer(city *domain.CityConfig, opts ...OptimizeOption) *MixOptimizer {
	o := &MixOptimizer{city: city, index: NewIndex(city)}
	for _, opt := range opts {
		opt(o)
	}
	if o.target == nil {
		o.target = o.index.Set(o.index.All())
	}
	return o
}

type mixCandidate struct {
	id      string
	overall float64
	cost    int64
	units   []string
}

// Optimize selects the subset of candidates that maximizes target coverage
// without spending more than budget. It is a pure, deterministic function of
// its inputs: candidate and publisher order do not matter. When nothing is
// affordable the selection is empty.
func (o *MixOptimizer) Optimize(candidates []domain.MatchResult, publishers []domain.PublisherProfile, budget int64) domain.MixSelection {
	if budget < 0 {
		budget = 0
	}
	cands := o.candidates(candidates, publishers)

	chosen := make([]bool, len(cands))
	var order []int
	counts := make(map[string]int, len(o.target))
	var spent int64

	add := func(i int) {
		chosen[i] = true
		order = append(order, i)
		spent += cands[i].cost
		for _, u := range cands[i].units {
			counts[u]++
		}
	}
	remove := func(k int) {
		i := order[k]
		chosen[i] = false
		order = append(order[:k], order[k+1:]...)
		spent -= cands[i].cost
		for _, u := range cands[i].units {
			counts[u]--
		}
	}

	fill := func() {
		for {
			best, bestGain := -1, 0
			for i, c := range cands {
				if chosen[i] || c.cost > budget-spent {
					continue
				}
				gain := 0
				for _, u := range c.units {
					if counts[u] == 0 {
						gain++
					}
				}
				if gain == 0 {
					continue
				}
				if best < 0 || preferCandidate(c, gain, cands[best], bestGain) {
					best, bestGain = i, gain
				}
			}
			if best < 0 {
				return
			}
			add(best)
		}
	}

	fill()

	// Refinement: drop publishers whose units are all covered by later
	// picks, then spend the freed budget.
	for iter := 0; iter < len(cands); iter++ {
		pruned := false
		for k := len(order) - 1; k >= 0; k-- {
			i := order[k]
			redundant := true
			for _, u := range cands[i].units {
				if counts[u] < 2 {
					redundant = false
					break
				}
			}
			if redundant {
				remove(k)
				pruned = true
			}
		}
		if !pruned {
			break
		}
		fill()
	}

	ids := make([]string, 0, len(order))
	for _, i := range order {
		ids = append(ids, cands[i].id)
	}
	sort.Strings(ids)

	return domain.MixSelection{
		PublisherIDs: ids,
		TotalSpend:   spent,
		Budget:       budget,
		Remaining:    budget - spent,
		Coverage:     summarize(o.index, o.city, ids, publishers),
	}
}

// candidates joins match results with publisher profiles, applies the score
// threshold and returns them ordered by publisher id.
func (o *MixOptimizer) candidates(results []domain.MatchResult, publishers []domain.PublisherProfile) []mixCandidate {
	profiles := profilesByID(publishers)

	best := make(map[string]domain.MatchResult, len(results))
	for _, r := range results {
		if prev, ok := best[r.PublisherID]; !ok || r.Overall > prev.Overall {
			best[r.PublisherID] = r
		}
	}

	out := make([]mixCandidate, 0, len(best))
	for id, r := range best {
		if r.Overall < o.minScore {
			continue
		}
		p, ok := profiles[id]
		if !ok || p.Validate() != nil {
			continue
		}
		reach := o.index.Reach(p)
		units := make([]string, 0, len(reach))
		for u := range reach {
			if _, ok := o.target[u]; ok {
				units = append(units, u)
			}
		}
		sort.Strings(units)
		out = append(out, mixCandidate{id: id, overall: r.Overall, cost: p.Cost(), units: units})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// preferCandidate orders candidates by marginal coverage, then overall
// score, then lower cost, then lower id.
func preferCandidate(a mixCandidate, gainA int, b mixCandidate, gainB int) bool {
	if gainA != gainB {
		return gainA > gainB
	}
	if a.overall != b.overall {
		return a.overall > b.overall
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.id < b.id
}

func profilesByID(publishers []domain.PublisherProfile) map[string]domain.PublisherProfile {
	m := make(map[string]domain.PublisherProfile, len(publishers))
	for _, p := range publishers {
		if _, ok := m[p.ID]; !ok {
			m[p.ID] = p
		}
	}
	return m
}
