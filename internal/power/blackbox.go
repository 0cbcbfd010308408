// Package power detects black-boxed constructs and scores the power effects
// gained through translation.
package power

import (
	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// Per-indicator coefficients for black-box dimensions
const (
	StabilityCoefficient       = 0.18
	OpacityCoefficient         = 0.12
	IrreversibilityCoefficient = 0.15
)

// DetectBlackBoxes emits one BlackBox per type with at least one indicator
// in the text, in rule order. Each dimension is min(1, coefficient × matched).
func DetectBlackBoxes(rs *rules.RuleSet, doc *extract.Document) []model.BlackBox {
	boxes := []model.BlackBox{}
	for _, rule := range rs.BlackBoxes {
		matched := rule.Indicators.Matched(doc.Lower)
		if len(matched) == 0 {
			continue
		}
		n := float64(len(matched))
		boxes = append(boxes, model.BlackBox{
			Type:               rule.Type,
			FormationMechanism: rule.FormationMechanism,
			Stability:          model.Clamp(StabilityCoefficient * n),
			Opacity:            model.Clamp(OpacityCoefficient * n),
			Irreversibility:    model.Clamp(IrreversibilityCoefficient * n),
			Indicators:         matched,
		})
	}
	return boxes
}
