// Package scoring implements the weighted similarity scorer that rates how
// likely a found item report resolves a lost item report. Scoring is pure
// arithmetic over the two reports; it performs no I/O.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/textmatch"
)

// Score thresholds for candidate retention and auto-matching.
const (
	// MinimumScore is the threshold below which candidate pairs are discarded.
	MinimumScore = 50
	// ExcellentScore marks a match strong enough that the auto-match sweep
	// stops looking for further candidates for the lost item.
	ExcellentScore = 90
)

// Confidence is a categorical label for a score band.
type Confidence string

// Confidence bands in descending score order.
const (
	ConfidenceExcellent Confidence = "excellent"
	ConfidenceGood      Confidence = "good"
	ConfidencePossible  Confidence = "possible"
	ConfidencePoor      Confidence = "poor"
)

// Band returns the confidence label for an integer score.
func Band(score int) Confidence {
	switch {
	case score >= ExcellentScore:
		return ConfidenceExcellent
	case score >= 70:
		return ConfidenceGood
	case score >= MinimumScore:
		return ConfidencePossible
	default:
		return ConfidencePoor
	}
}

// Input carries the fields of a single report that participate in scoring.
// Date is the last seen date for lost reports and the found date for found
// reports. LocationID is nil when the reporter could not name a location.
type Input struct {
	CategoryID  uuid.UUID
	LocationID  *uuid.UUID
	Title       string
	Description string
	Identifiers string
	Date        time.Time
}

// Factor records the contribution of one scored component.
// Value is the rule result in [0, 1]; Points is Weight * Value.
type Factor struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Value  float64 `json:"value"`
	Points float64 `json:"points"`
}

// Result is the outcome of scoring a lost/found pair.
type Result struct {
	Score   int      `json:"score"`
	Factors []Factor `json:"factors"`
	Reason  string   `json:"reason"`
}

// Scorer computes weighted similarity between lost and found reports.
type Scorer struct {
	weights Weights
}

// New creates a Scorer with the given weights. Weights are expected to be
// finalized (non-negative, summing to 100) before construction.
func New(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score rates the similarity of a lost report against a found report and
// returns an integer score in [0, 100] with a per-factor breakdown.
// A category mismatch short-circuits to zero regardless of other factors.
func (s *Scorer) Score(lost, found Input) Result {
	if lost.CategoryID != found.CategoryID {
		return Result{
			Score:   0,
			Factors: []Factor{},
			Reason:  "different categories",
		}
	}

	factors := []Factor{
		{Name: "category", Weight: s.weights.Category, Value: 1},
		{Name: "location", Weight: s.weights.Location, Value: locationValue(lost.LocationID, found.LocationID)},
		{Name: "date", Weight: s.weights.Date, Value: dateValue(lost.Date, found.Date)},
		{Name: "title", Weight: s.weights.Title, Value: textmatch.Similarity(lost.Title, found.Title)},
		{Name: "description", Weight: s.weights.Description, Value: textmatch.Similarity(lost.Description, found.Description)},
		{Name: "identifiers", Weight: s.weights.Identifier, Value: textmatch.Similarity(lost.Identifiers, found.Identifiers)},
	}

	total := 0.0
	for i := range factors {
		factors[i].Points = float64(factors[i].Weight) * factors[i].Value
		total += factors[i].Points
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:   score,
		Factors: factors,
		Reason:  buildReason(factors),
	}
}

// locationValue rates location agreement: full credit for the same location,
// partial credit when either side is unknown, minimal credit when both are
// known but differ.
func locationValue(lost, found *uuid.UUID) float64 {
	switch {
	case lost == nil || found == nil:
		return 0.5
	case *lost == *found:
		return 1
	default:
		return 0.3
	}
}

// dateValue rates date proximity in tiers of whole days between the last
// seen date and the found date. An item found before it was lost scores
// zero; a missing date on either side earns only the furthest tier.
func dateValue(lost, found time.Time) float64 {
	if lost.IsZero() || found.IsZero() {
		return 0.1
	}

	gap := found.Sub(lost)
	if gap < 0 {
		return 0
	}

	days := int(gap.Hours() / 24)
	switch {
	case days <= 1:
		return 1
	case days <= 3:
		return 0.9
	case days <= 7:
		return 0.7
	case days <= 14:
		return 0.5
	case days <= 30:
		return 0.3
	default:
		return 0.1
	}
}

// buildReason summarizes the non-zero factors as a compact human-readable
// string persisted alongside the match.
func buildReason(factors []Factor) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		if f.Value <= 0 || f.Weight == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d%%", f.Name, int(math.Round(f.Value*100))))
	}

	if len(parts) == 0 {
		return "no overlapping factors"
	}

	return strings.Join(parts, ", ")
}
