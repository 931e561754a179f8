package domain

// AudienceSpec is the audience a campaign wants to reach. It is built by the
// wizard and passed whole into the engine on every request; the engine does
// not retain it.
type AudienceSpec struct {
	CampaignID string `json:"campaign_id"`

	// Units holds the selected GeoUnit ids. It is ignored when Citywide is
	// set, even if it is not empty.
	Units    []string `json:"units,omitempty"`
	Citywide bool     `json:"citywide"`

	// Languages holds the selected language codes. Empty means no language
	// constraint.
	Languages []string `json:"languages,omitempty"`

	// Department names the running department. Its category selects the
	// city's target demographic profile unless TargetDemographics is set.
	Department         string       `json:"department,omitempty"`
	TargetDemographics Demographics `json:"target_demographics,omitempty"`

	BudgetTier string `json:"budget_tier"`
}

// HasGeography reports whether the audience expresses any geographic target.
func (a AudienceSpec) HasGeography() bool {
	return a.Citywide || len(a.Units) > 0
}
