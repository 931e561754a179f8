package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Demographics maps an audience attribute (seniors, youth, low_income, ...)
// to a share in [0,1].
type Demographics map[string]float64

// Validate checks that every share lies in [0,1].
func (d Demographics) Validate() error {
	for attr, v := range d {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("attribute %q must be within [0,1], got %v", attr, v)
		}
	}
	return nil
}

// PricingModel selects how a publisher charges.
type PricingModel string

const (
	PricingFlat PricingModel = "flat"
	PricingCPM  PricingModel = "cpm"
)

// Pricing describes a publisher's rate card in integer currency units.
type Pricing struct {
	Model    PricingModel `json:"model"`
	FlatRate int64        `json:"flat_rate,omitempty"`
	CPM      int64        `json:"cpm,omitempty"` // cost per thousand audience
	MinSpend int64        `json:"min_spend,omitempty"`
}

// PublisherProfile is a media or community publisher that can carry a
// campaign.
type PublisherProfile struct {
	ID       string `json:"id"`
	CityID   string `json:"city_id"`
	Name     string `json:"name"`
	Citywide bool   `json:"citywide"`

	// ReachUnits lists the GeoUnit ids the publisher reaches. Ignored when
	// Citywide is set.
	ReachUnits   []string     `json:"reach_units,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Demographics Demographics `json:"demographics,omitempty"`
	Pricing      Pricing      `json:"pricing"`

	// AudienceSize and EngagementRate feed the Reach dimension.
	AudienceSize   int64   `json:"audience_size"`
	EngagementRate float64 `json:"engagement_rate"`
}

// Cost returns the spend required to include the publisher in a mix: the
// rate card price, raised to the minimum spend.
func (p PublisherProfile) Cost() int64 {
	var cost int64
	switch p.Pricing.Model {
	case PricingCPM:
		cost = (p.Pricing.CPM*p.AudienceSize + 999) / 1000
	default:
		cost = p.Pricing.FlatRate
	}
	if cost < p.Pricing.MinSpend {
		cost = p.Pricing.MinSpend
	}
	return cost
}

// ReachMetric is the raw, un-normalized reach input: audience size boosted by
// engagement.
func (p PublisherProfile) ReachMetric() float64 {
	return float64(p.AudienceSize) * (1 + p.EngagementRate)
}

// Validate rejects malformed profiles. Batch scoring drops a publisher that
// fails validation instead of failing the whole batch.
func (p PublisherProfile) Validate() error {
	var errs []string
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, "id must not be empty")
	}
	if !p.Citywide && len(p.ReachUnits) == 0 {
		errs = append(errs, "reach must be citywide or list units")
	}
	switch p.Pricing.Model {
	case "", PricingFlat, PricingCPM:
	default:
		errs = append(errs, fmt.Sprintf("unknown pricing model %q", p.Pricing.Model))
	}
	if p.Pricing.FlatRate < 0 || p.Pricing.CPM < 0 || p.Pricing.MinSpend < 0 {
		errs = append(errs, "pricing amounts must be >= 0")
	}
	if p.AudienceSize < 0 {
		errs = append(errs, "audience size must be >= 0")
	}
	if math.IsNaN(p.EngagementRate) || math.IsInf(p.EngagementRate, 0) || p.EngagementRate < 0 {
		errs = append(errs, "engagement rate must be a finite value >= 0")
	}
	if err := p.Demographics.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
