package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"resonate/internal/core/domain"
)

func sfCity() *domain.CityConfig {
	return &domain.CityConfig{
		ID:   "sf",
		Name: "San Francisco",
		Departments: []domain.Department{
			{Name: "Department of Public Health", Category: "health"},
			{Name: "Department of the Environment", Category: "environment"},
		},
		Geography: domain.GeographyCatalog{
			Units: []domain.GeoUnit{
				{ID: "mission", Name: "Mission", Tier: domain.TierPrimary, Population: 60000},
				{ID: "castro", Name: "Castro", Tier: domain.TierPrimary, Population: 20000},
				{ID: "tenderloin", Name: "Tenderloin", Tier: domain.TierPrimary, Population: 30000},
				{ID: "bayview", Name: "Bayview", Tier: domain.TierPrimary, Population: 35000},
			},
		},
		Languages: []domain.Language{
			{Name: "English", Code: "en"},
			{Name: "Spanish", Code: "es"},
			{Name: "Cantonese", Code: "yue"},
		},
		Labels: domain.Labels{Unit: "neighborhood", UnitPlural: "neighborhoods", Citywide: "Citywide"},
		BudgetTiers: []domain.BudgetTier{
			{ID: "small", Label: "Under $5,000", Min: 0, Max: 500000},
			{ID: "medium", Label: "$5,000 - $25,000", Min: 500000, Max: 2500000},
		},
		CategoryProfiles: map[string]domain.Demographics{
			"health": {"seniors": 0.6, "low_income": 0.8},
		},
	}
}

func chicagoCity() *domain.CityConfig {
	return &domain.CityConfig{
		ID:   "chicago",
		Name: "Chicagoland",
		Geography: domain.GeographyCatalog{
			Groups: []string{"Far North Side", "South Side"},
			Units: []domain.GeoUnit{
				{ID: "rogers-park", Name: "Rogers Park", Group: "Far North Side", Tier: domain.TierPrimary},
				{ID: "evanston", Name: "Evanston", Group: "Far North Side", Tier: domain.TierSuburb},
				{ID: "hyde-park", Name: "Hyde Park", Group: "South Side", Tier: domain.TierPrimary},
				{ID: "englewood", Name: "Englewood", Group: "South Side", Tier: domain.TierPrimary},
				{ID: "oak-park", Name: "Oak Park", Tier: domain.TierSuburb},
			},
		},
		Languages: []domain.Language{
			{Name: "English", Code: "en"},
			{Name: "Spanish", Code: "es"},
			{Name: "Polish", Code: "pl"},
			{Name: "Urdu", Code: "ur"},
		},
		Labels:      domain.Labels{Unit: "community area", UnitPlural: "community areas", Citywide: "all community areas"},
		BudgetTiers: []domain.BudgetTier{{ID: "small", Max: 500000}},
	}
}

func publisher(id string, units []string, langs []string, flat int64, audience int64) domain.PublisherProfile {
	return domain.PublisherProfile{
		ID:           id,
		ReachUnits:   units,
		Languages:    langs,
		Pricing:      domain.Pricing{Model: domain.PricingFlat, FlatRate: flat},
		AudienceSize: audience,
	}
}

func citywidePublisher(id string, flat int64, audience int64) domain.PublisherProfile {
	p := publisher(id, nil, []string{"en"}, flat, audience)
	p.Citywide = true
	return p
}

// matchFor builds a minimal MatchResult for optimizer tests.
func matchFor(id string, overall float64) domain.MatchResult {
	return domain.MatchResult{PublisherID: id, Overall: overall}
}

func fixedEngine(opts ...Option) *Engine {
	var n atomic.Int64
	base := []Option{
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
		WithIDGenerator(func() uuid.UUID {
			return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n.Add(1)))
		}),
	}
	return New(append(base, opts...)...)
}
