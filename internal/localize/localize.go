// Package localize recognizes culture-specific mobilization idioms. It only
// adds a report section and never feeds back into the core analysis.
package localize

import (
	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// Scoring constants
const (
	EffectivenessFloor = 0.5  // Added to the matched keyword ratio
	CategoryWeight     = 0.25 // Per non-empty category
	HighAdaptation     = 0.75
	MediumAdaptation   = 0.5
)

// Analyze matches every localization category against the document
func Analyze(rs *rules.RuleSet, doc *extract.Document) *model.LocalizationAnalysis {
	out := Empty()
	for _, rule := range rs.Localization {
		matched := rule.Keywords.Matched(doc.Lower)
		if len(matched) == 0 {
			continue
		}
		out.Patterns = append(out.Patterns, model.LocalizationPattern{
			MechanismTag:    rule.Tag,
			CulturalContext: rule.CulturalContext,
			Effectiveness:   model.Clamp(float64(len(matched))/float64(len(rule.Keywords)) + EffectivenessFloor),
			MatchedKeywords: matched,
		})
	}

	out.AdaptationScore = model.Clamp(CategoryWeight * float64(len(out.Patterns)))
	out.AdaptationLevel = model.Rate(out.AdaptationScore, HighAdaptation, MediumAdaptation)
	return out
}

// Empty returns the section for a text with no idioms
func Empty() *model.LocalizationAnalysis {
	return &model.LocalizationAnalysis{
		Patterns:        []model.LocalizationPattern{},
		AdaptationLevel: model.LevelLow,
	}
}
