package db

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"

	"resonate/internal/core/domain"
)

// PublisherWriter stores publisher profiles. The postgres repository
// implements it.
type PublisherWriter interface {
	UpsertPublisher(ctx context.Context, p domain.PublisherProfile) error
}

// Seed upserts the demo inventory of cityIDs, or of every demo city when
// none is given. It is idempotent and returns the number of rows written.
func Seed(ctx context.Context, w PublisherWriter, logger *slog.Logger, cityIDs ...string) (int, error) {
	wanted := make(map[string]bool, len(cityIDs))
	for _, id := range cityIDs {
		wanted[id] = true
	}

	n := 0
	for _, p := range DemoPublishers() {
		if len(wanted) > 0 && !wanted[p.CityID] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return n, eris.Wrap(err, "db: seed cancelled")
		}
		if err := w.UpsertPublisher(ctx, p); err != nil {
			return n, eris.Wrapf(err, "db: seed publisher %s", p.ID)
		}
		n++
		logger.Debug("publisher seeded", slog.String("city", p.CityID), slog.String("publisher_id", p.ID))
	}
	return n, nil
}

func flat(amount int64) domain.Pricing {
	return domain.Pricing{Model: domain.PricingFlat, FlatRate: amount}
}

func cpm(rate, minSpend int64) domain.Pricing {
	return domain.Pricing{Model: domain.PricingCPM, CPM: rate, MinSpend: minSpend}
}

// DemoPublishers returns a small community media inventory for the
// built-in cities. Unit ids match the embedded city files.
func DemoPublishers() []domain.PublisherProfile {
	return []domain.PublisherProfile{
		{
			ID: "el-tecolote", CityID: "sf", Name: "El Tecolote",
			ReachUnits:   []string{"mission", "bernal-heights", "excelsior", "outer-mission"},
			Languages:    []string{"es", "en"},
			Demographics: domain.Demographics{"low_income": 0.55, "limited_english": 0.4, "families": 0.5},
			Pricing:      flat(125000), AudienceSize: 45000, EngagementRate: 0.09,
		},
		{
			ID: "wind-newspaper", CityID: "sf", Name: "Wind Newspaper",
			ReachUnits:   []string{"chinatown", "north-beach", "nob-hill", "sunset-parkside", "visitacion-valley"},
			Languages:    []string{"yue", "en"},
			Demographics: domain.Demographics{"seniors": 0.4, "limited_english": 0.6, "low_income": 0.45},
			Pricing:      flat(90000), AudienceSize: 30000, EngagementRate: 0.11,
		},
		{
			ID: "bayview-hunters-point-voice", CityID: "sf", Name: "Bayview Hunters Point Voice",
			ReachUnits:   []string{"bayview-hunters-point", "visitacion-valley", "potrero-hill"},
			Languages:    []string{"en"},
			Demographics: domain.Demographics{"low_income": 0.6, "seniors": 0.25, "homeowners": 0.35},
			Pricing:      flat(60000), AudienceSize: 18000, EngagementRate: 0.14,
		},
		{
			ID: "tenderloin-neighbor", CityID: "sf", Name: "Tenderloin Neighbor",
			ReachUnits:   []string{"tenderloin", "south-of-market", "western-addition"},
			Languages:    []string{"en", "vi", "tl"},
			Demographics: domain.Demographics{"low_income": 0.7, "renters": 0.9, "seniors": 0.3},
			Pricing:      flat(40000), AudienceSize: 12000, EngagementRate: 0.08,
		},
		{
			ID: "sf-citywide-radio", CityID: "sf", Name: "SF Citywide Radio",
			Citywide:     true,
			Languages:    []string{"en", "es"},
			Demographics: domain.Demographics{"commuters": 0.6, "seniors": 0.2},
			Pricing:      cpm(1800, 250000), AudienceSize: 400000, EngagementRate: 0.02,
		},
		{
			ID: "la-raza", CityID: "chicago", Name: "La Raza",
			ReachUnits:   []string{"south-lawndale", "lower-west-side", "gage-park", "belmont-cragin", "cicero"},
			Languages:    []string{"es"},
			Demographics: domain.Demographics{"families": 0.6, "limited_english": 0.45, "low_income": 0.5},
			Pricing:      flat(150000), AudienceSize: 80000, EngagementRate: 0.07,
		},
		{
			ID: "dziennik-zwiazkowy", CityID: "chicago", Name: "Dziennik Związkowy",
			ReachUnits:   []string{"jefferson-park", "portage-park", "avondale", "belmont-cragin"},
			Languages:    []string{"pl", "en"},
			Demographics: domain.Demographics{"seniors": 0.45, "homeowners": 0.6, "limited_english": 0.35},
			Pricing:      flat(80000), AudienceSize: 25000, EngagementRate: 0.1,
		},
		{
			ID: "chicago-crusader", CityID: "chicago", Name: "Chicago Crusader",
			ReachUnits:   []string{"bronzeville", "woodlawn", "south-shore", "chatham", "englewood", "roseland"},
			Languages:    []string{"en"},
			Demographics: domain.Demographics{"low_income": 0.5, "seniors": 0.3, "families": 0.45},
			Pricing:      flat(110000), AudienceSize: 60000, EngagementRate: 0.08,
		},
		{
			ID: "devon-avenue-weekly", CityID: "chicago", Name: "Devon Avenue Weekly",
			ReachUnits:   []string{"west-ridge", "rogers-park", "skokie"},
			Languages:    []string{"ur", "ar", "en"},
			Demographics: domain.Demographics{"families": 0.65, "limited_english": 0.4},
			Pricing:      flat(35000), AudienceSize: 15000, EngagementRate: 0.13,
		},
		{
			ID: "evanston-roundtable", CityID: "chicago", Name: "Evanston RoundTable",
			ReachUnits:   []string{"evanston"},
			Languages:    []string{"en"},
			Demographics: domain.Demographics{"homeowners": 0.55, "seniors": 0.25},
			Pricing:      flat(30000), AudienceSize: 20000, EngagementRate: 0.12,
		},
		{
			ID: "wednesday-journal", CityID: "chicago", Name: "Wednesday Journal",
			ReachUnits:   []string{"oak-park", "austin"},
			Languages:    []string{"en"},
			Demographics: domain.Demographics{"homeowners": 0.6, "families": 0.5},
			Pricing:      flat(28000), AudienceSize: 18000, EngagementRate: 0.1,
		},
		{
			ID: "chicago-metro-radio", CityID: "chicago", Name: "Chicago Metro Radio",
			Citywide:     true,
			Languages:    []string{"en", "es"},
			Demographics: domain.Demographics{"commuters": 0.65},
			Pricing:      cpm(2200, 400000), AudienceSize: 900000, EngagementRate: 0.015,
		},
	}
}
