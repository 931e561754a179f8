package usecase

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"

	"resonate/internal/core/domain"
	"resonate/internal/core/engine"
	"resonate/internal/core/port"
	"resonate/internal/metrics"
)

// MatchUseCase orchestrates the engine for the wizard. It resolves the
// tenant, loads its publisher inventory and hands both to the engine. It
// keeps no per-campaign state between calls.
type MatchUseCase struct {
	cities     port.CityRegistry
	publishers port.PublisherRepository
	engine     *engine.Engine
	logger     *slog.Logger

	// minScore is the default optimizer threshold used when a request does
	// not carry its own.
	minScore float64
}

var _ port.MatchUseCase = (*MatchUseCase)(nil)

// NewMatchUseCase creates a new usecase.
func NewMatchUseCase(cities port.CityRegistry, publishers port.PublisherRepository, eng *engine.Engine, minScore float64, logger *slog.Logger) *MatchUseCase {
	return &MatchUseCase{
		cities:     cities,
		publishers: publishers,
		engine:     eng,
		logger:     logger,
		minScore:   minScore,
	}
}

// Cities lists the configured tenants.
func (u *MatchUseCase) Cities(_ context.Context) []port.CitySummary {
	all := u.cities.List()
	out := make([]port.CitySummary, 0, len(all))
	for _, c := range all {
		out = append(out, port.CitySummary{ID: c.ID, Name: c.Name, Labels: c.Labels})
	}
	return out
}

// City returns one tenant configuration.
func (u *MatchUseCase) City(_ context.Context, cityID string) (*domain.CityConfig, error) {
	return u.cities.Get(cityID)
}

// Geography returns the grouped catalog of a city.
func (u *MatchUseCase) Geography(_ context.Context, cityID string) (*port.GeographyResp, error) {
	city, err := u.cities.Get(cityID)
	if err != nil {
		return nil, err
	}
	groups, err := engine.GroupsFor(city)
	if err != nil {
		return nil, err
	}
	return &port.GeographyResp{CityID: city.ID, Labels: city.Labels, Groups: groups}, nil
}

// Match ranks the city's publishers for the audience.
func (u *MatchUseCase) Match(ctx context.Context, req port.MatchReq) (*domain.BatchResult, error) {
	if req.Limit < 0 {
		return nil, domain.NewInputError(domain.CodeInvalidRequest, "limit must be >= 0")
	}
	city, pubs, err := u.inventory(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	res, err := u.score(ctx, city, req.Audience, pubs)
	if err != nil {
		return nil, err
	}
	if req.Limit > 0 && len(res.Results) > req.Limit {
		res.Results = res.Results[:req.Limit]
	}
	return res, nil
}

// Explain renders the rationale of a result.
func (u *MatchUseCase) Explain(_ context.Context, result domain.MatchResult) domain.Breakdown {
	return engine.Explain(result)
}

// Optimize scores the inventory and assembles a mix for the audience. The
// coverage target is the audience's own geography.
func (u *MatchUseCase) Optimize(ctx context.Context, req port.OptimizeReq) (*port.OptimizeResp, error) {
	minScore := u.minScore
	if req.MinScore != nil {
		minScore = *req.MinScore
		if minScore < 0 || minScore > 1 {
			return nil, domain.NewInputError(domain.CodeInvalidRequest, "min_score must be within [0,1]")
		}
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, domain.NewInputError(domain.CodeInvalidBudget, "budget must be >= 0")
	}

	city, pubs, err := u.inventory(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	res, err := u.score(ctx, city, req.Audience, pubs)
	if err != nil {
		return nil, err
	}

	var budget int64
	if req.Budget != nil {
		budget = *req.Budget
	} else {
		tier, _ := city.BudgetTier(req.Audience.BudgetTier)
		budget = tier.Max
	}

	opt := engine.NewMixOptimizer(city,
		engine.WithMinScore(minScore),
		engine.WithTarget(engine.UnitsFor(city, req.Audience)),
	)
	sel := opt.Optimize(res.Results, pubs, budget)
	metrics.MixSize.WithLabelValues(city.ID).Observe(float64(len(sel.PublisherIDs)))

	u.logger.Debug("mix optimized",
		slog.String("city", city.ID),
		slog.String("campaign_id", req.Audience.CampaignID),
		slog.Int("publishers", len(sel.PublisherIDs)),
		slog.Int64("spend", sel.TotalSpend),
		slog.Int64("budget", sel.Budget),
	)
	return &port.OptimizeResp{Selection: sel, Matches: res.Results, Dropped: res.Dropped}, nil
}

// Summarize recomputes the coverage of a selection from scratch.
func (u *MatchUseCase) Summarize(ctx context.Context, req port.SummaryReq) (*domain.CoverageSummary, error) {
	city, pubs, err := u.inventory(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	s := engine.Summarize(req.PublisherIDs, pubs, city)
	return &s, nil
}

func (u *MatchUseCase) inventory(ctx context.Context, cityID string) (*domain.CityConfig, []domain.PublisherProfile, error) {
	city, err := u.cities.Get(cityID)
	if err != nil {
		return nil, nil, err
	}
	pubs, err := u.publishers.ListPublishers(ctx, city.ID)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "usecase: list publishers of %s", city.ID)
	}
	return city, pubs, nil
}

func (u *MatchUseCase) score(ctx context.Context, city *domain.CityConfig, audience domain.AudienceSpec, pubs []domain.PublisherProfile) (*domain.BatchResult, error) {
	res, err := u.engine.ScoreBatch(ctx, audience, pubs, city)
	if err != nil {
		return nil, err
	}
	metrics.PublishersScoredTotal.WithLabelValues(city.ID).Add(float64(len(res.Results)))
	metrics.PublishersDroppedTotal.WithLabelValues(city.ID).Add(float64(len(res.Dropped)))
	for _, r := range res.Results {
		metrics.MatchScore.WithLabelValues(city.ID).Observe(r.Overall)
	}
	return res, nil
}
