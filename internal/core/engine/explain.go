package engine

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"resonate/internal/core/domain"
)

// Explain projects a MatchResult into a per-dimension breakdown. It reads
// only the evidence stored on the result and never rescores. All five
// dimensions are always present, in canonical order.
func Explain(result domain.MatchResult) domain.Breakdown {
	p := message.NewPrinter(language.English)
	b := domain.Breakdown{
		PublisherID: result.PublisherID,
		CampaignID:  result.CampaignID,
		Overall:     result.Overall,
		Dimensions:  make([]domain.Explanation, 0, len(domain.Dimensions)),
	}
	for _, d := range domain.Dimensions {
		ds, ok := findDimension(result, d)
		if !ok {
			b.Dimensions = append(b.Dimensions, domain.Explanation{Dimension: d, Rationale: "Not scored"})
			continue
		}
		b.Dimensions = append(b.Dimensions, domain.Explanation{
			Dimension: d,
			Score:     ds.Score,
			Weight:    ds.Weight,
			Rationale: rationale(p, ds),
		})
	}
	return b
}

func findDimension(r domain.MatchResult, d domain.Dimension) (domain.DimensionScore, bool) {
	for _, ds := range r.Dimensions {
		if ds.Dimension == d {
			return ds, true
		}
	}
	return domain.DimensionScore{}, false
}

func rationale(p *message.Printer, ds domain.DimensionScore) string {
	ev := ds.Evidence
	switch ds.Dimension {
	case domain.DimensionGeographic:
		switch {
		case ev.Citywide && ev.Note == "citywide":
			return "Reaches the whole city"
		case ev.Citywide:
			return p.Sprintf("Reaches %d of %d areas citywide", ev.Matched, ev.Total)
		}
		return p.Sprintf("Overlaps %d of %d selected areas", ev.Matched, ev.Total)

	case domain.DimensionDemographic:
		if ev.Total == 0 {
			return "No target demographic specified"
		}
		return p.Sprintf("Audience profile %.0f%% similar across %d attributes (%s)",
			ds.Score*100, ev.Total, strings.Join(ev.Items, ", "))

	case domain.DimensionEconomic:
		cost, budget := money(p, int64(ev.Value)), money(p, int64(ev.Reference))
		switch {
		case ev.Note == "over budget":
			return p.Sprintf("Cost %s exceeds the %s budget", cost, budget)
		case ev.Value == 0:
			return "No cost"
		}
		return p.Sprintf("Cost %s within the %s budget", cost, budget)

	case domain.DimensionCultural:
		if ev.Total == 0 {
			return "No language preference selected"
		}
		s := p.Sprintf("Supports %d of %d selected languages", ev.Matched, ev.Total)
		if len(ev.Items) > 0 {
			s += " (" + strings.Join(ev.Items, ", ") + ")"
		}
		return s

	case domain.DimensionReach:
		if ev.Reference <= 0 {
			return "No measured audience"
		}
		return p.Sprintf("Reach %d, %.0f%% of the largest publisher considered",
			int64(ev.Value), ev.Value/ev.Reference*100)
	}
	return ""
}

// money renders an amount in cents as whole dollars with separators.
func money(p *message.Printer, cents int64) string {
	if cents%100 == 0 {
		return p.Sprintf("$%d", cents/100)
	}
	return p.Sprintf("$%.2f", float64(cents)/100)
}
