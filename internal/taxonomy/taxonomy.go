// Package taxonomy defines the closed waste-category enumeration shared by
// classification and item domains. The tables here are process-wide constants
// loaded once; nothing mutates them at runtime.
package taxonomy

import (
	"encoding/json"
	"slices"
	"strings"
)

// Category is a canonical waste-category key.
type Category string

// The ten canonical waste categories, in enumeration order.
const (
	Furniture    Category = "furniture"
	Electronics  Category = "electronics"
	Metals       Category = "metals"
	Plastic      Category = "plastic"
	Paper        Category = "paper"
	Glass        Category = "glass"
	Textiles     Category = "textiles"
	Construction Category = "construction"
	Organic      Category = "organic"
	Hazardous    Category = "hazardous"
)

// Other is the out-of-taxonomy fallback key. It is not part of the closed
// enumeration and never matches during fallback scanning.
const Other Category = "other"

var categories = []Category{
	Furniture,
	Electronics,
	Metals,
	Plastic,
	Paper,
	Glass,
	Textiles,
	Construction,
	Organic,
	Hazardous,
}

var labels = map[Category]string{
	Furniture:    "أثاث",
	Electronics:  "إلكترونيات",
	Metals:       "معادن",
	Plastic:      "بلاستيك",
	Paper:        "ورق وكرتون",
	Glass:        "زجاج",
	Textiles:     "منسوجات",
	Construction: "مواد بناء",
	Organic:      "مخلفات عضوية",
	Hazardous:    "مواد خطرة",
}

// Categories returns the closed enumeration in canonical order.
func Categories() []Category {
	return categories
}

// Valid reports whether key is one of the ten canonical categories.
func Valid(key Category) bool {
	return slices.Contains(categories, key)
}

// Label returns the Arabic display label for a category,
// or "غير محدد" when the category is not in the taxonomy.
func Label(key Category) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return "غير محدد"
}

// Match scans text for the first category whose canonical key or Arabic
// label occurs in it, checking categories in enumeration order. The key
// comparison is case-insensitive.
func Match(text string) (Category, bool) {
	lowered := strings.ToLower(text)
	for _, c := range categories {
		if strings.Contains(lowered, string(c)) || strings.Contains(text, labels[c]) {
			return c, true
		}
	}
	return "", false
}

// UnmarshalJSON validates that the decoded string is a canonical category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Category(raw)
	if !Valid(v) {
		return ErrInvalidCategory
	}
	*c = v
	return nil
}
