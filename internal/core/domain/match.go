package domain

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Dimension names one axis of a match score.
type Dimension string

const (
	DimensionGeographic  Dimension = "Geographic"
	DimensionDemographic Dimension = "Demographic"
	DimensionEconomic    Dimension = "Economic"
	DimensionCultural    Dimension = "Cultural"
	DimensionReach       Dimension = "Reach"
)

// Dimensions lists every dimension in canonical order.
var Dimensions = []Dimension{
	DimensionGeographic,
	DimensionDemographic,
	DimensionEconomic,
	DimensionCultural,
	DimensionReach,
}

// Weights sets the relative emphasis of each dimension in the overall score.
type Weights struct {
	Geographic  float64 `json:"geographic" yaml:"geographic"`
	Demographic float64 `json:"demographic" yaml:"demographic"`
	Economic    float64 `json:"economic" yaml:"economic"`
	Cultural    float64 `json:"cultural" yaml:"cultural"`
	Reach       float64 `json:"reach" yaml:"reach"`
}

// DefaultWeights weighs every dimension equally.
func DefaultWeights() Weights {
	return Weights{Geographic: 0.2, Demographic: 0.2, Economic: 0.2, Cultural: 0.2, Reach: 0.2}
}

// Of returns the weight of a single dimension.
func (w Weights) Of(d Dimension) float64 {
	switch d {
	case DimensionGeographic:
		return w.Geographic
	case DimensionDemographic:
		return w.Demographic
	case DimensionEconomic:
		return w.Economic
	case DimensionCultural:
		return w.Cultural
	case DimensionReach:
		return w.Reach
	}
	return 0
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Geographic + w.Demographic + w.Economic + w.Cultural + w.Reach
}

// Validate requires non-negative weights with a positive sum.
func (w Weights) Validate() error {
	for _, d := range Dimensions {
		v := w.Of(d)
		if math.IsNaN(v) || v < 0 {
			return errors.New("weights must be >= 0")
		}
	}
	if w.Sum() <= 0 {
		return errors.New("weight sum must be > 0")
	}
	return nil
}

// Evidence records the inputs that produced a dimension score, so the score
// can be explained without recomputation.
type Evidence struct {
	Matched   int      `json:"matched,omitempty"`
	Total     int      `json:"total,omitempty"`
	Citywide  bool     `json:"citywide,omitempty"`
	Value     float64  `json:"value,omitempty"`
	Reference float64  `json:"reference,omitempty"`
	Items     []string `json:"items,omitempty"`
	Note      string   `json:"note,omitempty"`
}

// DimensionScore is a single dimension's score in [0,1].
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Weight    float64   `json:"weight"`
	Evidence  Evidence  `json:"evidence"`
}

// MatchResult is the immutable outcome of scoring one publisher against one
// audience. A changed audience or publisher produces a new result.
type MatchResult struct {
	ID          uuid.UUID        `json:"id"`
	PublisherID string           `json:"publisher_id"`
	CampaignID  string           `json:"campaign_id"`
	Overall     float64          `json:"overall"`
	Dimensions  []DimensionScore `json:"dimensions"`
	ComputedAt  time.Time        `json:"computed_at"`
}

// Score returns the score of dimension d, or 0 when it is absent.
func (r MatchResult) Score(d Dimension) float64 {
	for _, ds := range r.Dimensions {
		if ds.Dimension == d {
			return ds.Score
		}
	}
	return 0
}

// Explanation is the rendered rationale for one dimension.
type Explanation struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Weight    float64   `json:"weight"`
	Rationale string    `json:"rationale"`
}

// Breakdown is the auditable per-dimension view of a MatchResult.
type Breakdown struct {
	PublisherID string        `json:"publisher_id"`
	CampaignID  string        `json:"campaign_id"`
	Overall     float64       `json:"overall"`
	Dimensions  []Explanation `json:"dimensions"`
}

// DroppedPublisher records a publisher excluded from a batch.
type DroppedPublisher struct {
	PublisherID string `json:"publisher_id"`
	Reason      string `json:"reason"`
}

// BatchResult is the outcome of scoring a whole inventory. Results are ranked.
type BatchResult struct {
	Results []MatchResult      `json:"results"`
	Dropped []DroppedPublisher `json:"dropped,omitempty"`
}
