package classifications

// Confidence is the discrete bucket derived from a continuous confidence
// score.
type Confidence string

// Confidence buckets, highest first.
const (
	ConfidenceVeryHigh Confidence = "very_high"
	ConfidenceHigh     Confidence = "high"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceLow      Confidence = "low"
	ConfidenceVeryLow  Confidence = "very_low"
)

// autoApplyThreshold is the minimum score at which a predicted category
// is applied to the owning item without human confirmation.
const autoApplyThreshold = 0.85

// ClassifyScore maps a confidence score to its bucket. Intervals are
// half-open with an inclusive lower bound; scores outside [0, 1] are not
// clamped and bucket by the same thresholds.
func ClassifyScore(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceVeryHigh
	case score >= 0.85:
		return ConfidenceHigh
	case score >= 0.70:
		return ConfidenceMedium
	case score >= 0.50:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// AutoApplicable reports whether a score is high enough to auto-apply
// the predicted category to the owning item.
func AutoApplicable(score float64) bool {
	return score >= autoApplyThreshold
}
