package classifications_test

import (
	"testing"

	"github.com/greenswap/greenbot/internal/classifications"
	"github.com/greenswap/greenbot/internal/taxonomy"
)

func TestInterpret(t *testing.T) {
	t.Run("well-formed JSON taken verbatim", func(t *testing.T) {
		got := classifications.Interpret(`{
			"category": "plastic",
			"confidence": 0.92,
			"material_composition": {"plastic": 0.9, "metal": 0.1},
			"recyclability_score": 0.8,
			"environmental_impact": "low",
			"price_range": {"min": 10, "max": 50},
			"recycling_tips": "نظف البلاستيك",
			"safety_warnings": ""
		}`)

		if got.Category != taxonomy.Plastic {
			t.Errorf("Category = %s, want plastic", got.Category)
		}
		if got.Confidence != 0.92 {
			t.Errorf("Confidence = %v, want 0.92", got.Confidence)
		}
		if got.MaterialComposition["plastic"] != 0.9 {
			t.Errorf("MaterialComposition = %v", got.MaterialComposition)
		}
		if got.PriceRange.Min != 10 || got.PriceRange.Max != 50 {
			t.Errorf("PriceRange = %+v, want {10 50}", got.PriceRange)
		}
		if got.RecyclingTips != "نظف البلاستيك" {
			t.Errorf("RecyclingTips = %q", got.RecyclingTips)
		}
	})

	t.Run("missing fields default independently", func(t *testing.T) {
		got := classifications.Interpret(`{"category": "glass"}`)

		if got.Category != taxonomy.Glass {
			t.Errorf("Category = %s, want glass", got.Category)
		}
		if got.Confidence != 0.5 {
			t.Errorf("Confidence = %v, want 0.5", got.Confidence)
		}
		if got.RecyclabilityScore != 0.5 {
			t.Errorf("RecyclabilityScore = %v, want 0.5", got.RecyclabilityScore)
		}
		if got.EnvironmentalImpact != "medium" {
			t.Errorf("EnvironmentalImpact = %q, want medium", got.EnvironmentalImpact)
		}
		if got.PriceRange.Min != 0 || got.PriceRange.Max != 100 {
			t.Errorf("PriceRange = %+v, want {0 100}", got.PriceRange)
		}
		if len(got.MaterialComposition) != 0 {
			t.Errorf("MaterialComposition = %v, want empty", got.MaterialComposition)
		}
	})

	t.Run("out-of-taxonomy category kept verbatim", func(t *testing.T) {
		got := classifications.Interpret(`{"category": "banana", "confidence": 0.97}`)

		if got.Category != taxonomy.Category("banana") {
			t.Errorf("Category = %s, want banana", got.Category)
		}
		if got.Confidence != 0.97 {
			t.Errorf("Confidence = %v, want 0.97", got.Confidence)
		}
		if taxonomy.Label(got.Category) != "غير محدد" {
			t.Errorf("Label = %q, want غير محدد", taxonomy.Label(got.Category))
		}
	})

	t.Run("fenced JSON is recovered", func(t *testing.T) {
		got := classifications.Interpret("```json\n{\"category\": \"metals\", \"confidence\": 0.88}\n```")

		if got.Category != taxonomy.Metals {
			t.Errorf("Category = %s, want metals", got.Category)
		}
	})

	t.Run("unstructured text scans for category key", func(t *testing.T) {
		got := classifications.Interpret("The item appears to be made of Plastic material.")

		if got.Category != taxonomy.Plastic {
			t.Errorf("Category = %s, want plastic", got.Category)
		}
		if got.Confidence != 0.5 {
			t.Errorf("Confidence = %v, want 0.5", got.Confidence)
		}
	})

	t.Run("unstructured text scans for Arabic label", func(t *testing.T) {
		got := classifications.Interpret("يبدو أن هذا المنتج من الزجاج: زجاج")

		if got.Category != taxonomy.Glass {
			t.Errorf("Category = %s, want glass", got.Category)
		}
	})

	t.Run("first category in enumeration order wins", func(t *testing.T) {
		got := classifications.Interpret("could be plastic or could be furniture")

		if got.Category != taxonomy.Furniture {
			t.Errorf("Category = %s, want furniture", got.Category)
		}
	})

	t.Run("garbage yields full defaults", func(t *testing.T) {
		got := classifications.Interpret("?????!!!")

		if got.Category != taxonomy.Other {
			t.Errorf("Category = %s, want other", got.Category)
		}
		if got.Confidence != 0.5 {
			t.Errorf("Confidence = %v, want 0.5", got.Confidence)
		}
		if got.EnvironmentalImpact != "medium" {
			t.Errorf("EnvironmentalImpact = %q, want medium", got.EnvironmentalImpact)
		}
	})

	t.Run("empty input never panics", func(t *testing.T) {
		got := classifications.Interpret("")

		if got.Category != taxonomy.Other {
			t.Errorf("Category = %s, want other", got.Category)
		}
	})
}
