package conversations

// Per-type welcome messages, appended as the first assistant message of
// every new session. Read-only after process start.
var welcomeMessages = map[Type]string{
	TypeWasteInquiry:       "مرحباً! أنا جرين بوت 🌱 مساعدك في تصنيف وتقييم المخلفات. كيف يمكنني مساعدتك اليوم؟",
	TypeRecyclingAdvice:    "أهلاً بك! 🔄 أنا هنا لأقدم لك أفضل النصائح لإعادة التدوير. ما نوع المخلفات التي تريد معرفة المزيد عنها؟",
	TypePriceEstimation:    "مرحباً! 💰 سأساعدك في تقدير أسعار المواد المعاد تدويرها. أخبرني عن المواد التي لديك.",
	TypeGeneralSupport:     "أهلاً وسهلاً! 🤝 أنا جرين بوت، مساعدك في كل ما يتعلق بإعادة التدوير والبيئة. كيف يمكنني مساعدتك؟",
	TypeItemRecommendation: "مرحباً! 🎯 سأساعدك في العثور على أفضل المنتجات والعروض المناسبة لاحتياجاتك. ماذا تبحث عنه؟",
}

// Welcome returns the welcome message for a conversation type, falling
// back to the general support greeting for unrecognized types.
func Welcome(t Type) string {
	if msg, ok := welcomeMessages[t]; ok {
		return msg
	}
	return welcomeMessages[TypeGeneralSupport]
}
