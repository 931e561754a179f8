package port

import (
	"context"

	"resonate/internal/core/domain"
)

// MatchUseCase defines the operations exposed to the campaign wizard. This
// interface is the primary port into the application; mock implementations
// are generated from it for handler tests.
type MatchUseCase interface {
	// Cities lists the tenants the service is configured for.
	Cities(ctx context.Context) []CitySummary

	// City returns the full configuration of one tenant, or
	// domain.ErrCityNotFound.
	City(ctx context.Context, cityID string) (*domain.CityConfig, error)

	// Geography returns the display groups of a city's catalog.
	Geography(ctx context.Context, cityID string) (*GeographyResp, error)

	// Match scores the audience against the city's publisher inventory and
	// returns the ranked results. Invalid audiences fail with a
	// *domain.InputError.
	Match(ctx context.Context, req MatchReq) (*domain.BatchResult, error)

	// Explain renders the per-dimension rationale of a previously computed
	// result. It never rescores.
	Explain(ctx context.Context, result domain.MatchResult) domain.Breakdown

	// Optimize scores the inventory and assembles a publisher mix within
	// the budget.
	Optimize(ctx context.Context, req OptimizeReq) (*OptimizeResp, error)

	// Summarize recomputes the coverage of a caller-owned selection.
	Summarize(ctx context.Context, req SummaryReq) (*domain.CoverageSummary, error)
}

// CitySummary is the short form of a tenant used for listings.
type CitySummary struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Labels domain.Labels `json:"labels"`
}

// GeographyResp carries the grouped catalog together with the labels the
// wizard renders it with.
type GeographyResp struct {
	CityID string            `json:"city_id"`
	Labels domain.Labels     `json:"labels"`
	Groups []domain.GeoGroup `json:"groups"`
}

// MatchReq asks for the ranked publishers of a city. Limit truncates the
// ranking when positive.
type MatchReq struct {
	CityID   string              `json:"-"`
	Audience domain.AudienceSpec `json:"audience"`
	Limit    int                 `json:"limit,omitempty"`
}

// OptimizeReq asks for a publisher mix. A nil Budget means the ceiling of
// the audience's budget tier; a nil MinScore means the service default.
type OptimizeReq struct {
	CityID   string              `json:"-"`
	Audience domain.AudienceSpec `json:"audience"`
	Budget   *int64              `json:"budget,omitempty"`
	MinScore *float64            `json:"min_score,omitempty"`
}

// OptimizeResp is the chosen mix plus the publishers considered for it.
type OptimizeResp struct {
	Selection domain.MixSelection       `json:"selection"`
	Matches   []domain.MatchResult      `json:"matches"`
	Dropped   []domain.DroppedPublisher `json:"dropped,omitempty"`
}

// SummaryReq names the publishers currently selected in the wizard.
type SummaryReq struct {
	CityID       string   `json:"-"`
	PublisherIDs []string `json:"publisher_ids"`
}
