package domain

import (
	"fmt"
	"strings"
)

// Department is a government department that can run a campaign. Category
// links it to a target demographic profile.
type Department struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// Language is an outreach language offered by a city.
type Language struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// Labels carries the presentation vocabulary of a city. The engine never
// reads it; it is passed through to callers.
type Labels struct {
	Unit       string `json:"unit" yaml:"unit"`
	UnitPlural string `json:"unit_plural" yaml:"unit_plural"`
	Citywide   string `json:"citywide" yaml:"citywide"`
}

// BudgetTier is a spend bracket selectable by the campaign. Amounts are in
// integer currency units (cents).
type BudgetTier struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Min   int64  `json:"min" yaml:"min"`
	Max   int64  `json:"max" yaml:"max"`
}

// CityConfig is the static, per-tenant configuration. It is loaded once at
// process start and must be treated as read-only afterwards.
type CityConfig struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Departments []Department     `json:"departments" yaml:"departments"`
	Geography   GeographyCatalog `json:"geography" yaml:"geography"`
	Languages   []Language       `json:"languages" yaml:"languages"`
	Labels      Labels           `json:"labels" yaml:"labels"`
	BudgetTiers []BudgetTier     `json:"budget_tiers" yaml:"budget_tiers"`

	// Weights overrides the default equal weighting of the five match
	// dimensions. Nil means 0.2 each.
	Weights *Weights `json:"weights,omitempty" yaml:"weights,omitempty"`

	// DemographicWeights weights individual audience attributes when the
	// demographic distance is computed. Missing attributes weigh 1.
	DemographicWeights map[string]float64 `json:"demographic_weights,omitempty" yaml:"demographic_weights,omitempty"`

	// CategoryProfiles maps a department category to the demographic
	// profile its campaigns usually target.
	CategoryProfiles map[string]Demographics `json:"category_profiles,omitempty" yaml:"category_profiles,omitempty"`
}

// CitywideLabel returns the text used for citywide selection.
func (c *CityConfig) CitywideLabel() string {
	if c.Labels.Citywide != "" {
		return c.Labels.Citywide
	}
	return "Citywide"
}

// Department looks up a department by name, case-insensitively.
func (c *CityConfig) Department(name string) (Department, bool) {
	for _, d := range c.Departments {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Department{}, false
}

// BudgetTier looks up a budget tier by id.
func (c *CityConfig) BudgetTier(id string) (BudgetTier, bool) {
	for _, t := range c.BudgetTiers {
		if t.ID == id {
			return t, true
		}
	}
	return BudgetTier{}, false
}

// HasLanguage reports whether code is part of the language catalog.
func (c *CityConfig) HasLanguage(code string) bool {
	for _, l := range c.Languages {
		if strings.EqualFold(l.Code, code) {
			return true
		}
	}
	return false
}

// EffectiveWeights returns the configured dimension weights or the default
// equal weighting.
func (c *CityConfig) EffectiveWeights() Weights {
	if c.Weights == nil {
		return DefaultWeights()
	}
	return *c.Weights
}

// Validate checks the configuration for internal consistency. Every problem
// is reported as a *ConfigError.
func (c *CityConfig) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return &ConfigError{Field: "id", Reason: "must not be empty"}
	}
	cfgErr := func(field, format string, args ...any) error {
		return &ConfigError{City: c.ID, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	if err := c.Geography.validate(); err != nil {
		return cfgErr("geography", "%s", err)
	}

	codes := make(map[string]struct{}, len(c.Languages))
	for i, l := range c.Languages {
		code := strings.ToLower(strings.TrimSpace(l.Code))
		if code == "" {
			return cfgErr(fmt.Sprintf("languages[%d].code", i), "must not be empty")
		}
		if _, dup := codes[code]; dup {
			return cfgErr(fmt.Sprintf("languages[%d].code", i), "duplicate code %q", l.Code)
		}
		codes[code] = struct{}{}
	}

	for i, d := range c.Departments {
		if strings.TrimSpace(d.Name) == "" {
			return cfgErr(fmt.Sprintf("departments[%d].name", i), "must not be empty")
		}
	}

	tiers := make(map[string]struct{}, len(c.BudgetTiers))
	for i, t := range c.BudgetTiers {
		field := fmt.Sprintf("budget_tiers[%d]", i)
		if t.ID == "" {
			return cfgErr(field+".id", "must not be empty")
		}
		if _, dup := tiers[t.ID]; dup {
			return cfgErr(field+".id", "duplicate tier %q", t.ID)
		}
		tiers[t.ID] = struct{}{}
		if t.Min < 0 || t.Max < 0 {
			return cfgErr(field, "amounts must be >= 0")
		}
		if t.Max < t.Min {
			return cfgErr(field, "max must be >= min")
		}
	}

	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return cfgErr("weights", "%s", err)
		}
	}
	for attr, w := range c.DemographicWeights {
		if w < 0 {
			return cfgErr("demographic_weights."+attr, "must be >= 0")
		}
	}
	for category, profile := range c.CategoryProfiles {
		if err := profile.Validate(); err != nil {
			return cfgErr("category_profiles."+category, "%s", err)
		}
	}
	return nil
}
