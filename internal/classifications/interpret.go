package classifications

import (
	"github.com/greenswap/greenbot/internal/taxonomy"
	"github.com/greenswap/greenbot/pkg/formatting"
)

// Candidate is the normalized interpretation of one model reply. Every
// field is populated; missing or invalid model output falls back to the
// documented defaults.
type Candidate struct {
	Category            taxonomy.Category  `json:"category"`
	Confidence          float64            `json:"confidence"`
	MaterialComposition map[string]float64 `json:"material_composition"`
	RecyclabilityScore  float64            `json:"recyclability_score"`
	EnvironmentalImpact string             `json:"environmental_impact"`
	PriceRange          PriceRange         `json:"price_range"`
	RecyclingTips       string             `json:"recycling_tips"`
	SafetyWarnings      string             `json:"safety_warnings"`
}

// rawCandidate decodes the model's JSON with every field optional, so a
// partially valid reply still contributes what it can. Category stays a
// plain string here: a present value is kept verbatim even outside the
// taxonomy, where it earns the "غير محدد" label and never auto-applies.
type rawCandidate struct {
	Category            *string            `json:"category"`
	Confidence          *float64           `json:"confidence"`
	MaterialComposition map[string]float64 `json:"material_composition"`
	RecyclabilityScore  *float64           `json:"recyclability_score"`
	EnvironmentalImpact *string            `json:"environmental_impact"`
	PriceRange          *PriceRange        `json:"price_range"`
	RecyclingTips       *string            `json:"recycling_tips"`
	SafetyWarnings      *string            `json:"safety_warnings"`
}

// Interpret converts a raw model reply into a Candidate. It never fails:
// structured replies are decoded field by field with defaults for gaps,
// and unstructured replies fall back to scanning the text for a category
// mention. A reply matching nothing yields the "other" category at 0.5
// confidence.
func Interpret(content string) Candidate {
	candidate := Candidate{
		Category:            taxonomy.Other,
		Confidence:          0.5,
		MaterialComposition: map[string]float64{},
		RecyclabilityScore:  0.5,
		EnvironmentalImpact: "medium",
		PriceRange:          PriceRange{Min: 0, Max: 100},
	}

	raw, err := formatting.Parse[rawCandidate](content)
	if err != nil {
		if match, ok := taxonomy.Match(content); ok {
			candidate.Category = match
		}
		return candidate
	}

	if raw.Category != nil {
		candidate.Category = taxonomy.Category(*raw.Category)
	}
	if raw.Confidence != nil {
		candidate.Confidence = *raw.Confidence
	}
	if raw.MaterialComposition != nil {
		candidate.MaterialComposition = raw.MaterialComposition
	}
	if raw.RecyclabilityScore != nil {
		candidate.RecyclabilityScore = *raw.RecyclabilityScore
	}
	if raw.EnvironmentalImpact != nil {
		candidate.EnvironmentalImpact = *raw.EnvironmentalImpact
	}
	if raw.PriceRange != nil {
		candidate.PriceRange = *raw.PriceRange
	}
	if raw.RecyclingTips != nil {
		candidate.RecyclingTips = *raw.RecyclingTips
	}
	if raw.SafetyWarnings != nil {
		candidate.SafetyWarnings = *raw.SafetyWarnings
	}

	return candidate
}
