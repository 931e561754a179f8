package port

import (
	"resonate/internal/core/domain"
)

// CityRegistry resolves tenant configurations. It is an outbound port; the
// configurations it returns are loaded once at start up and must not be
// mutated by callers.
type CityRegistry interface {
	// Get returns the configuration of a city or domain.ErrCityNotFound.
	Get(id string) (*domain.CityConfig, error)
	// List returns every loaded city ordered by id.
	List() []*domain.CityConfig
}
