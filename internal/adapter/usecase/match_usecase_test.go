package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resonate/internal/core/domain"
	"resonate/internal/core/engine"
	"resonate/internal/core/port"
	"resonate/internal/core/port/mocks"
)

func testCity() *domain.CityConfig {
	return &domain.CityConfig{
		ID:   "sf",
		Name: "San Francisco",
		Geography: domain.GeographyCatalog{Units: []domain.GeoUnit{
			{ID: "mission", Name: "Mission", Population: 60000},
			{ID: "castro", Name: "Castro", Population: 20000},
			{ID: "tenderloin", Name: "Tenderloin", Population: 30000},
			{ID: "bayview", Name: "Bayview", Population: 35000},
			{ID: "daly-city", Name: "Daly City", Tier: domain.TierSuburb},
		}},
		Languages:   []domain.Language{{Name: "English", Code: "en"}, {Name: "Spanish", Code: "es"}},
		Labels:      domain.Labels{Unit: "neighborhood", Citywide: "Citywide"},
		BudgetTiers: []domain.BudgetTier{{ID: "small", Max: 100}},
	}
}

func testPublishers() []domain.PublisherProfile {
	flat := func(id string, cost, audience int64, units ...string) domain.PublisherProfile {
		return domain.PublisherProfile{
			ID: id, CityID: "sf", ReachUnits: units, Languages: []string{"es"},
			Pricing: domain.Pricing{Model: domain.PricingFlat, FlatRate: cost}, AudienceSize: audience,
		}
	}
	return []domain.PublisherProfile{
		flat("a", 50, 1000, "mission", "castro"),
		flat("b", 50, 1000, "tenderloin", "bayview"),
		flat("c", 100, 3000, "mission", "castro", "tenderloin", "bayview"),
		{ID: "broken", CityID: "sf", AudienceSize: -1},
	}
}

func newUseCase(t *testing.T) (*MatchUseCase, *mocks.MockCityRegistry, *mocks.MockPublisherRepository) {
	cities := mocks.NewMockCityRegistry(t)
	repo := mocks.NewMockPublisherRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(engine.WithLogger(logger))
	return NewMatchUseCase(cities, repo, eng, 0, logger), cities, repo
}

func TestMatch(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	res, err := svc.Match(context.Background(), port.MatchReq{
		CityID:   "sf",
		Audience: domain.AudienceSpec{CampaignID: "flu", Citywide: true, Languages: []string{"es"}, BudgetTier: "small"},
	})
	require.NoError(t, err)

	require.Len(t, res.Results, 3)
	assert.Equal(t, "c", res.Results[0].PublisherID)
	assert.Equal(t, "flu", res.Results[0].CampaignID)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, "broken", res.Dropped[0].PublisherID)
}

func TestMatch_Limit(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	res, err := svc.Match(context.Background(), port.MatchReq{
		CityID:   "sf",
		Audience: domain.AudienceSpec{Citywide: true, BudgetTier: "small"},
		Limit:    2,
	})
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)
}

func TestMatch_UnknownCity(t *testing.T) {
	svc, cities, _ := newUseCase(t)
	cities.EXPECT().Get("nyc").Return(nil, domain.ErrCityNotFound)

	_, err := svc.Match(context.Background(), port.MatchReq{CityID: "nyc"})
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestMatch_InputErrorIsNotWrapped(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	_, err := svc.Match(context.Background(), port.MatchReq{CityID: "sf", Audience: domain.AudienceSpec{BudgetTier: "small"}})
	var inErr *domain.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, domain.CodeMissingGeography, inErr.Code)
}

func TestMatch_RepositoryError(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(nil, errors.New("connection refused"))

	_, err := svc.Match(context.Background(), port.MatchReq{CityID: "sf", Audience: domain.AudienceSpec{Citywide: true, BudgetTier: "small"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list publishers of sf")
}

func TestOptimize_DefaultsToTierBudget(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	resp, err := svc.Optimize(context.Background(), port.OptimizeReq{
		CityID:   "sf",
		Audience: domain.AudienceSpec{Citywide: true, BudgetTier: "small"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c"}, resp.Selection.PublisherIDs)
	assert.Equal(t, int64(100), resp.Selection.Budget)
	assert.Equal(t, 4, resp.Selection.Coverage.UniqueUnits)
	assert.Equal(t, 5, resp.Selection.Coverage.TotalUnits)
	assert.Len(t, resp.Matches, 3)
	assert.Len(t, resp.Dropped, 1)
}

func TestOptimize_TargetsAudienceGeography(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	budget := int64(60)
	resp, err := svc.Optimize(context.Background(), port.OptimizeReq{
		CityID:   "sf",
		Audience: domain.AudienceSpec{Units: []string{"tenderloin"}, BudgetTier: "small"},
		Budget:   &budget,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, resp.Selection.PublisherIDs)
}

func TestOptimize_ZeroBudget(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	budget := int64(0)
	resp, err := svc.Optimize(context.Background(), port.OptimizeReq{
		CityID:   "sf",
		Audience: domain.AudienceSpec{Citywide: true, BudgetTier: "small"},
		Budget:   &budget,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Selection.PublisherIDs)
	assert.Zero(t, resp.Selection.Coverage.UniqueUnits)
}

func TestOptimize_RejectsBadParameters(t *testing.T) {
	svc, _, _ := newUseCase(t)
	negative := int64(-1)
	tooHigh := 1.5

	_, err := svc.Optimize(context.Background(), port.OptimizeReq{CityID: "sf", Budget: &negative})
	var inErr *domain.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, domain.CodeInvalidBudget, inErr.Code)

	_, err = svc.Optimize(context.Background(), port.OptimizeReq{CityID: "sf", MinScore: &tooHigh})
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, domain.CodeInvalidRequest, inErr.Code)
}

func TestSummarize(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	s, err := svc.Summarize(context.Background(), port.SummaryReq{CityID: "sf", PublisherIDs: []string{"b", "a", "missing"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"mission", "castro", "tenderloin", "bayview"}, s.Units)
	assert.Equal(t, int64(2000), s.AggregateAudience)
}

func TestGeography(t *testing.T) {
	svc, cities, _ := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)

	geo, err := svc.Geography(context.Background(), "sf")
	require.NoError(t, err)
	require.Len(t, geo.Groups, 2)
	assert.True(t, geo.Groups[0].Implicit)
	assert.Equal(t, domain.KeySuburbsGroup, geo.Groups[1].Name)
	assert.Equal(t, "neighborhood", geo.Labels.Unit)
}

func TestCities(t *testing.T) {
	svc, cities, _ := newUseCase(t)
	cities.EXPECT().List().Return([]*domain.CityConfig{testCity()})

	got := svc.Cities(context.Background())
	assert.Equal(t, []port.CitySummary{{ID: "sf", Name: "San Francisco", Labels: testCity().Labels}}, got)
}

func TestExplain(t *testing.T) {
	svc, _, _ := newUseCase(t)
	b := svc.Explain(context.Background(), domain.MatchResult{PublisherID: "a"})
	assert.Len(t, b.Dimensions, 5)
}

// TestConcurrentMatch ensures requests share no state: every caller sees
// the same ranking.
func TestConcurrentMatch(t *testing.T) {
	svc, cities, repo := newUseCase(t)
	cities.EXPECT().Get("sf").Return(testCity(), nil)
	repo.EXPECT().ListPublishers(mock.Anything, "sf").Return(testPublishers(), nil)

	req := port.MatchReq{CityID: "sf", Audience: domain.AudienceSpec{Units: []string{"mission"}, BudgetTier: "small"}}

	var (
		mu     sync.Mutex
		orders [][]string
	)
	wg := sync.WaitGroup{}
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			res, err := svc.Match(context.Background(), req)
			if err != nil {
				return
			}
			ids := make([]string, len(res.Results))
			for j, r := range res.Results {
				ids[j] = r.PublisherID
			}
			mu.Lock()
			orders = append(orders, ids)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, orders, count)
	for _, o := range orders[1:] {
		assert.Equal(t, orders[0], o)
	}
}
