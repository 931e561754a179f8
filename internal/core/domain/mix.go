package domain

// GeoGroup is a display group of units. Implicit marks the single unnamed
// group of a flat city; Suburb marks the trailing suburb group.
type GeoGroup struct {
	Name     string    `json:"name"`
	Implicit bool      `json:"implicit,omitempty"`
	Suburb   bool      `json:"suburb,omitempty"`
	Units    []GeoUnit `json:"units"`
}

// KeySuburbsGroup is the heading under which suburb-tier units are shown.
const KeySuburbsGroup = "Key Suburbs"

// CoverageSummary is the combined reach of a set of publishers. It is always
// derived from a selection and never mutated on its own.
type CoverageSummary struct {
	Units       []string `json:"units"`
	Languages   []string `json:"languages"`
	UniqueUnits int      `json:"unique_units"`
	TotalUnits  int      `json:"total_units"`

	// AggregateAudience sums publisher audiences and may double count people
	// reached by several publishers. EstimatedAudience caps it at the
	// population of the covered units when that is known.
	AggregateAudience int64 `json:"aggregate_audience"`
	EstimatedAudience int64 `json:"estimated_audience"`
}

// MixSelection is a set of publishers chosen to serve a campaign within a
// budget. Callers treat it as immutable and build a new one to change it.
type MixSelection struct {
	PublisherIDs []string        `json:"publisher_ids"`
	TotalSpend   int64           `json:"total_spend"`
	Budget       int64           `json:"budget"`
	Remaining    int64           `json:"remaining"`
	Coverage     CoverageSummary `json:"coverage"`
}
