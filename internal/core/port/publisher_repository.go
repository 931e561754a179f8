package port

import (
	"context"

	"resonate/internal/core/domain"
)

// PublisherRepository defines the publisher inventory source. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe.
type PublisherRepository interface {
	// ListPublishers returns the inventory of a city. An unknown city yields
	// an empty inventory, not an error.
	ListPublishers(ctx context.Context, cityID string) ([]domain.PublisherProfile, error)
}
