package taxonomy

// Default recycling guidance per category. Not every category has an entry;
// organic and hazardous guidance comes from the model itself.
var recyclingTips = map[Category]string{
	Plastic:      "تأكد من تنظيف البلاستيك قبل إعادة التدوير. فصل الأنواع المختلفة حسب الرمز.",
	Paper:        "أزل أي مواد لاصقة أو معدنية. تجنب الورق المبلل أو الملوث.",
	Metals:       "فصل المعادن المختلفة. الألومنيوم والنحاس لهما قيمة عالية.",
	Electronics:  "احذف البيانات الشخصية. فصل البطاريات. ابحث عن مراكز متخصصة.",
	Glass:        "فصل الألوان المختلفة. أزل الأغطية المعدنية أو البلاستيكية.",
	Furniture:    "فكك القطع الكبيرة. فصل المواد المختلفة (خشب، معدن، قماش).",
	Textiles:     "تبرع بالملابس الصالحة. استخدم الباقي كخرق أو لإعادة التدوير.",
	Construction: "فصل المواد المختلفة. بعض المواد قابلة لإعادة الاستخدام مباشرة.",
}

// RecyclingTips returns the default recycling guidance for a category,
// or an empty string when none is defined.
func RecyclingTips(key Category) string {
	return recyclingTips[key]
}
