package engine

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"resonate/internal/core/domain"
)

// scoringContext holds everything derived from the audience and the city
// that is shared, read-only, by every publisher of a batch.
type scoringContext struct {
	campaignID string
	index      *Index
	citywide   bool
	target     []string
	languages  []string
	demoTarget domain.Demographics
	demoWeight map[string]float64
	budget     int64
	weights    domain.Weights

	reachMin, reachMax float64
}

// prepare validates the audience against the city and resolves the inputs of
// every dimension. Failures are *domain.InputError.
func (e *Engine) prepare(audience domain.AudienceSpec, city *domain.CityConfig) (*scoringContext, error) {
	if !audience.HasGeography() {
		return nil, domain.NewInputError(domain.CodeMissingGeography,
			"select at least one %s or choose %s", unitLabel(city), city.CitywideLabel())
	}
	if audience.BudgetTier == "" {
		return nil, domain.NewInputError(domain.CodeMissingBudgetTier, "a budget tier is required")
	}
	tier, ok := city.BudgetTier(audience.BudgetTier)
	if !ok {
		return nil, domain.NewInputError(domain.CodeUnknownBudgetTier, "unknown budget tier %q", audience.BudgetTier)
	}

	idx := NewIndex(city)
	sc := &scoringContext{
		campaignID: audience.CampaignID,
		index:      idx,
		citywide:   audience.Citywide,
		budget:     tier.Max,
		weights:    city.EffectiveWeights(),
		demoWeight: city.DemographicWeights,
	}

	if !audience.Citywide {
		for _, id := range audience.Units {
			if !idx.Contains(id) {
				return nil, domain.NewInputError(domain.CodeUnknownUnit, "unknown %s %q", unitLabel(city), id)
			}
		}
	}
	sc.target = idx.Expand(audience)

	seen := make(map[string]struct{}, len(audience.Languages))
	for _, code := range audience.Languages {
		if !city.HasLanguage(code) {
			return nil, domain.NewInputError(domain.CodeUnknownLanguage, "unknown language %q", code)
		}
		norm := strings.ToLower(code)
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		sc.languages = append(sc.languages, norm)
	}

	switch {
	case len(audience.TargetDemographics) > 0:
		if err := audience.TargetDemographics.Validate(); err != nil {
			return nil, domain.NewInputError(domain.CodeInvalidDemographics, "%s", err)
		}
		sc.demoTarget = audience.TargetDemographics
	case audience.Department != "":
		dept, ok := city.Department(audience.Department)
		if !ok {
			return nil, domain.NewInputError(domain.CodeUnknownDepartment, "unknown department %q", audience.Department)
		}
		sc.demoTarget = city.CategoryProfiles[dept.Category]
	}
	return sc, nil
}

func unitLabel(city *domain.CityConfig) string {
	if city.Labels.Unit != "" {
		return city.Labels.Unit
	}
	return "area"
}

// Score computes the match between one audience and one publisher. Reach is
// normalized against a batch of one, so a lone publisher with any audience
// scores 1 on that dimension.
func (e *Engine) Score(audience domain.AudienceSpec, publisher domain.PublisherProfile, city *domain.CityConfig) (domain.MatchResult, error) {
	sc, err := e.prepare(audience, city)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if err = publisher.Validate(); err != nil {
		return domain.MatchResult{}, domain.NewInputError(domain.CodeInvalidPublisher, "publisher %q: %s", publisher.ID, err)
	}
	m := publisher.ReachMetric()
	sc.reachMin, sc.reachMax = m, m
	return e.score(sc, publisher), nil
}

// ScoreBatch scores every publisher of an inventory and returns the results
// ranked best first. Malformed publishers are dropped with a logged reason;
// the rest of the batch proceeds. Cancelling ctx abandons the batch.
func (e *Engine) ScoreBatch(ctx context.Context, audience domain.AudienceSpec, publishers []domain.PublisherProfile, city *domain.CityConfig) (*domain.BatchResult, error) {
	sc, err := e.prepare(audience, city)
	if err != nil {
		return nil, err
	}

	out := &domain.BatchResult{}
	valid := make([]domain.PublisherProfile, 0, len(publishers))
	seen := make(map[string]struct{}, len(publishers))
	for _, p := range publishers {
		reason := ""
		if err := p.Validate(); err != nil {
			reason = err.Error()
		} else if _, dup := seen[p.ID]; dup {
			reason = "duplicate publisher id"
		}
		if reason != "" {
			e.logger.Warn("dropping publisher from batch",
				slog.String("publisher_id", p.ID),
				slog.String("reason", reason),
			)
			out.Dropped = append(out.Dropped, domain.DroppedPublisher{PublisherID: p.ID, Reason: reason})
			continue
		}
		seen[p.ID] = struct{}{}
		valid = append(valid, p)
	}

	for i, p := range valid {
		m := p.ReachMetric()
		if i == 0 || m < sc.reachMin {
			sc.reachMin = m
		}
		if i == 0 || m > sc.reachMax {
			sc.reachMax = m
		}
	}

	results := make([]domain.MatchResult, len(valid))
	if len(valid) > e.parallelThreshold && e.workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.workers)
		for i := range valid {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = e.score(sc, valid[i])
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, eris.Wrap(err, "engine: score batch")
		}
	} else {
		for i := range valid {
			if err = ctx.Err(); err != nil {
				return nil, eris.Wrap(err, "engine: score batch")
			}
			results[i] = e.score(sc, valid[i])
		}
	}
	if err = ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "engine: score batch")
	}

	Rank(results)
	out.Results = results
	return out, nil
}

// score is O(dimensions) and never blocks.
func (e *Engine) score(sc *scoringContext, p domain.PublisherProfile) domain.MatchResult {
	dims := []domain.DimensionScore{
		scoreGeographic(sc, p),
		scoreDemographic(sc, p),
		scoreEconomic(sc, p),
		scoreCultural(sc, p),
		scoreReach(sc, p),
	}

	var total, weightSum float64
	for i := range dims {
		w := sc.weights.Of(dims[i].Dimension)
		dims[i].Weight = w
		dims[i].Score = clamp01(dims[i].Score)
		total += w * dims[i].Score
		weightSum += w
	}
	overall := 0.0
	if weightSum > 0 {
		overall = clamp01(total / weightSum)
	}

	return domain.MatchResult{
		ID:          e.newID(),
		PublisherID: p.ID,
		CampaignID:  sc.campaignID,
		Overall:     overall,
		Dimensions:  dims,
		ComputedAt:  e.now(),
	}
}

// scoreGeographic is the share of targeted units the publisher reaches. A
// citywide campaign is measured against the whole catalog.
func scoreGeographic(sc *scoringContext, p domain.PublisherProfile) domain.DimensionScore {
	ds := domain.DimensionScore{Dimension: domain.DimensionGeographic}
	if sc.citywide && p.Citywide {
		n := sc.index.Len()
		ds.Score = 1
		ds.Evidence = domain.Evidence{Citywide: true, Matched: n, Total: n, Note: "citywide"}
		return ds
	}

	reach := sc.index.Reach(p)
	matched := 0
	for _, id := range sc.target {
		if _, ok := reach[id]; ok {
			matched++
		}
	}
	ds.Evidence = domain.Evidence{Citywide: sc.citywide, Matched: matched, Total: len(sc.target)}
	if len(sc.target) > 0 {
		ds.Score = float64(matched) / float64(len(sc.target))
	}
	return ds
}

// scoreDemographic maps the weighted root-mean-square distance between the
// target profile and the publisher's audience to a similarity. Attributes
// absent from the publisher count as 0.
func scoreDemographic(sc *scoringContext, p domain.PublisherProfile) domain.DimensionScore {
	ds := domain.DimensionScore{Dimension: domain.DimensionDemographic}
	if len(sc.demoTarget) == 0 {
		ds.Score = 1
		ds.Evidence = domain.Evidence{Note: "no target"}
		return ds
	}

	attrs := make([]string, 0, len(sc.demoTarget))
	for attr := range sc.demoTarget {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	var sum, weightSum float64
	for _, attr := range attrs {
		w := 1.0
		if v, ok := sc.demoWeight[attr]; ok {
			w = v
		}
		diff := sc.demoTarget[attr] - p.Demographics[attr]
		sum += w * diff * diff
		weightSum += w
	}

	distance := 0.0
	if weightSum > 0 {
		distance = math.Sqrt(sum / weightSum)
	}
	ds.Score = 1 - distance
	ds.Evidence = domain.Evidence{Total: len(attrs), Value: distance, Items: attrs}
	return ds
}

// scoreEconomic decays with the share of the budget a publisher consumes. A
// publisher costing more than the budget scores 0 but stays in the results.
func scoreEconomic(sc *scoringContext, p domain.PublisherProfile) domain.DimensionScore {
	ds := domain.DimensionScore{Dimension: domain.DimensionEconomic}
	cost := p.Cost()
	ds.Evidence = domain.Evidence{Value: float64(cost), Reference: float64(sc.budget)}
	switch {
	case cost > sc.budget:
		ds.Score = 0
		ds.Evidence.Note = "over budget"
	case cost == 0:
		ds.Score = 1
	default:
		ds.Score = 1 / (1 + float64(cost)/float64(sc.budget))
	}
	return ds
}

// scoreCultural is the share of selected languages the publisher supports.
func scoreCultural(sc *scoringContext, p domain.PublisherProfile) domain.DimensionScore {
	ds := domain.DimensionScore{Dimension: domain.DimensionCultural}
	if len(sc.languages) == 0 {
		ds.Score = 1
		ds.Evidence = domain.Evidence{Note: "no language constraint"}
		return ds
	}
	supported := make(map[string]struct{}, len(p.Languages))
	for _, l := range p.Languages {
		supported[strings.ToLower(l)] = struct{}{}
	}
	var matched []string
	for _, l := range sc.languages {
		if _, ok := supported[l]; ok {
			matched = append(matched, l)
		}
	}
	ds.Score = float64(len(matched)) / float64(len(sc.languages))
	ds.Evidence = domain.Evidence{Matched: len(matched), Total: len(sc.languages), Items: matched}
	return ds
}

// scoreReach min-max scales the publisher's reach metric within the batch.
func scoreReach(sc *scoringContext, p domain.PublisherProfile) domain.DimensionScore {
	ds := domain.DimensionScore{Dimension: domain.DimensionReach}
	m := p.ReachMetric()
	ds.Evidence = domain.Evidence{Value: m, Reference: sc.reachMax}
	switch {
	case sc.reachMax > sc.reachMin:
		ds.Score = (m - sc.reachMin) / (sc.reachMax - sc.reachMin)
	case m > 0:
		ds.Score = 1
	}
	return ds
}

// Rank orders results best first: higher overall score, then higher
// Geographic, then higher Reach, then lower publisher id.
func Rank(results []domain.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return ranksBefore(results[i], results[j])
	})
}

func ranksBefore(a, b domain.MatchResult) bool {
	if a.Overall != b.Overall {
		return a.Overall > b.Overall
	}
	if ga, gb := a.Score(domain.DimensionGeographic), b.Score(domain.DimensionGeographic); ga != gb {
		return ga > gb
	}
	if ra, rb := a.Score(domain.DimensionReach), b.Score(domain.DimensionReach); ra != rb {
		return ra > rb
	}
	return a.PublisherID < b.PublisherID
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
