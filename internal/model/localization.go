package model

// LocalizationPattern is a matched culture-specific mobilization idiom
type LocalizationPattern struct {
	MechanismTag    string   `json:"mechanism_tag"`
	CulturalContext string   `json:"cultural_context"`
	Effectiveness   float64  `json:"effectiveness"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// LocalizationAnalysis is appended to Mobilization results only
type LocalizationAnalysis struct {
	Patterns        []LocalizationPattern `json:"patterns"`
	AdaptationScore float64               `json:"adaptation_score"`
	AdaptationLevel Level                 `json:"adaptation_level"`
}
