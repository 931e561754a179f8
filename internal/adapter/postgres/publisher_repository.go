package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"

	"resonate/internal/core/domain"
)

// Pool is the subset of *pgxpool.Pool the repository needs. pgxmock pools
// satisfy it in tests.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PublisherRepository implements port.PublisherRepository on PostgreSQL.
type PublisherRepository struct {
	pool   Pool
	logger *slog.Logger
}

// NewPublisherRepository returns a new repository instance.
func NewPublisherRepository(pool Pool, logger *slog.Logger) *PublisherRepository {
	return &PublisherRepository{pool: pool, logger: logger}
}

const listPublishersSQL = `
        SELECT
            id,
            city_id,
            name,
            citywide,
            reach_units,
            languages,
            demographics,
            pricing_model,
            flat_rate,
            cpm,
            min_spend,
            audience_size,
            engagement_rate
        FROM publishers
        WHERE city_id = $1
        ORDER BY id`

// ListPublishers returns the inventory of a city ordered by id. Rows whose
// demographics column cannot be decoded are skipped with a warning;
// semantic validation is left to the engine.
func (r *PublisherRepository) ListPublishers(ctx context.Context, cityID string) ([]domain.PublisherProfile, error) {
	rows, err := r.pool.Query(ctx, listPublishersSQL, cityID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query publishers")
	}

	type rawPublisher struct {
		P               domain.PublisherProfile
		DemographicsRaw []byte
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawPublisher, error) {
		var rp rawPublisher
		var model string
		err := row.Scan(
			&rp.P.ID,
			&rp.P.CityID,
			&rp.P.Name,
			&rp.P.Citywide,
			&rp.P.ReachUnits,
			&rp.P.Languages,
			&rp.DemographicsRaw,
			&model,
			&rp.P.Pricing.FlatRate,
			&rp.P.Pricing.CPM,
			&rp.P.Pricing.MinSpend,
			&rp.P.AudienceSize,
			&rp.P.EngagementRate,
		)
		rp.P.Pricing.Model = domain.PricingModel(model)
		return rp, err
	})
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan publishers")
	}

	out := make([]domain.PublisherProfile, 0, len(raw))
	for _, rp := range raw {
		if len(rp.DemographicsRaw) > 0 {
			if err = json.Unmarshal(rp.DemographicsRaw, &rp.P.Demographics); err != nil {
				r.logger.Warn("skipping publisher with malformed demographics",
					slog.String("publisher_id", rp.P.ID),
					slog.Any("error", err),
				)
				continue
			}
		}
		out = append(out, rp.P)
	}
	return out, nil
}

const upsertPublisherSQL = `
INSERT INTO publishers
    (id, city_id, name, citywide, reach_units, languages, demographics,
     pricing_model, flat_rate, cpm, min_spend, audience_size, engagement_rate, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now())
ON CONFLICT (id) DO UPDATE SET
    city_id = EXCLUDED.city_id,
    name = EXCLUDED.name,
    citywide = EXCLUDED.citywide,
    reach_units = EXCLUDED.reach_units,
    languages = EXCLUDED.languages,
    demographics = EXCLUDED.demographics,
    pricing_model = EXCLUDED.pricing_model,
    flat_rate = EXCLUDED.flat_rate,
    cpm = EXCLUDED.cpm,
    min_spend = EXCLUDED.min_spend,
    audience_size = EXCLUDED.audience_size,
    engagement_rate = EXCLUDED.engagement_rate,
    updated_at = now()`

// UpsertPublisher inserts a publisher or replaces the stored one with the
// same id.
func (r *PublisherRepository) UpsertPublisher(ctx context.Context, p domain.PublisherProfile) error {
	if err := p.Validate(); err != nil {
		return eris.Wrapf(err, "postgres: publisher %q", p.ID)
	}
	demographics := p.Demographics
	if demographics == nil {
		demographics = domain.Demographics{}
	}
	demoJSON, err := json.Marshal(demographics)
	if err != nil {
		return eris.Wrap(err, "postgres: encode demographics")
	}
	model := p.Pricing.Model
	if model == "" {
		model = domain.PricingFlat
	}
	reach, langs := p.ReachUnits, p.Languages
	if reach == nil {
		reach = []string{}
	}
	if langs == nil {
		langs = []string{}
	}

	_, err = r.pool.Exec(ctx, upsertPublisherSQL,
		p.ID, p.CityID, p.Name, p.Citywide, reach, langs, demoJSON,
		string(model), p.Pricing.FlatRate, p.Pricing.CPM, p.Pricing.MinSpend,
		p.AudienceSize, p.EngagementRate)
	if err != nil {
		return eris.Wrapf(err, "postgres: upsert publisher %s", p.ID)
	}
	return nil
}
