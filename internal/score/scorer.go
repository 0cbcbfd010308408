package score

import (
	"fmt"
	"math"

	"github.com/ppiankov/actornet/internal/model"
)

// Compliance weights and thresholds
const (
	ComplianceBase       = 0.5
	MechanismsIncrement  = 0.2
	BlackBoxesIncrement  = 0.2
	PowerIncrement       = 0.1
	HighCompliance       = 0.8
	MediumCompliance     = 0.6
	HighEffectiveness    = 0.7
	MediumEffectiveness  = 0.4
	powerDimensionsCount = 4
)

// Scorer calculates the theory-compliance score and effectiveness and
// generates diagnostic signals
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Compliance scores a synthesized result. Every signal carries its formula.
func (s *Scorer) Compliance(r *model.AnalysisResult) model.Compliance {
	var signals []model.Signal
	score := ComplianceBase

	// 1. Mechanisms (+0.2)
	inc, sig := s.mechanisms(r)
	score += inc
	signals = append(signals, sig)

	// 2. Black boxes (+0.2)
	inc, sig = s.blackBoxes(r)
	score += inc
	signals = append(signals, sig)

	// 3. Power effects (+0.1)
	inc, sig = s.power(r)
	score += inc
	signals = append(signals, sig)

	// Informational signals, not scored
	signals = append(signals, s.networkStability(r), s.processCoverage(r))
	if sig, ok := s.contradictions(r); ok {
		signals = append(signals, sig)
	}
	if r.Localization != nil && len(r.Localization.Patterns) > 0 {
		signals = append(signals, s.localization(r.Localization))
	}

	// Rounded so summed increments land exactly on the thresholds
	score = model.Clamp(math.Round(score*1000) / 1000)
	return model.Compliance{
		Score:   score,
		Level:   model.Rate(score, HighCompliance, MediumCompliance),
		Signals: signals,
	}
}

// mechanisms scores the presence of extraction records
func (s *Scorer) mechanisms(r *model.AnalysisResult) (float64, model.Signal) {
	count := len(r.Mechanisms)
	if count == 0 {
		return 0, model.Signal{
			Type:        model.SignalMechanisms,
			Severity:    model.SeverityWarning,
			Description: "No translation mechanisms extracted",
			Data:        map[string]interface{}{"records": 0, "increment": 0.0},
		}
	}

	return MechanismsIncrement, model.Signal{
		Type:        model.SignalMechanisms,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("%d translation mechanism(s) extracted", count),
		Data: map[string]interface{}{
			"records":   count,
			"increment": MechanismsIncrement,
			"formula":   "records > 0 ? 0.2 : 0",
		},
	}
}

// blackBoxes scores the presence of stabilized constructs
func (s *Scorer) blackBoxes(r *model.AnalysisResult) (float64, model.Signal) {
	count := len(r.BlackBoxes)
	if count == 0 {
		return 0, model.Signal{
			Type:        model.SignalBlackBoxes,
			Severity:    model.SeverityWarning,
			Description: "No black-box formation detected",
			Data:        map[string]interface{}{"black_boxes": 0, "increment": 0.0},
		}
	}

	types := make([]string, 0, count)
	for _, b := range r.BlackBoxes {
		types = append(types, string(b.Type))
	}

	return BlackBoxesIncrement, model.Signal{
		Type:        model.SignalBlackBoxes,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("%d black box(es) formed", count),
		Data: map[string]interface{}{
			"black_boxes": count,
			"types":       types,
			"increment":   BlackBoxesIncrement,
			"formula":     "black_boxes > 0 ? 0.2 : 0",
		},
	}
}

// power scores a nonzero power total
func (s *Scorer) power(r *model.AnalysisResult) (float64, model.Signal) {
	total := r.Power.Effects.Total
	if total <= 0 {
		return 0, model.Signal{
			Type:        model.SignalPowerEffects,
			Severity:    model.SeverityWarning,
			Description: "No power effects detected",
			Data:        map[string]interface{}{"total": total, "increment": 0.0},
		}
	}

	return PowerIncrement, model.Signal{
		Type:        model.SignalPowerEffects,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("Power total %.2f (%s mode)", total, r.Power.Mode),
		Data: map[string]interface{}{
			"institutional": r.Power.Effects.Institutional,
			"discursive":    r.Power.Effects.Discursive,
			"technical":     r.Power.Effects.Technical,
			"symbolic":      r.Power.Effects.Symbolic,
			"total":         total,
			"increment":     PowerIncrement,
			"formula":       "total > 0 ? 0.1 : 0; total = institutional + discursive + technical + symbolic",
		},
	}
}

func (s *Scorer) networkStability(r *model.AnalysisResult) model.Signal {
	n := r.Network
	severity := model.SeverityInfo
	if n.StabilityLevel == model.LevelLow {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalNetworkStability,
		Severity:    severity,
		Description: fmt.Sprintf("Network stability %.2f (%s, %s mode)", n.StabilityScore, n.StabilityLevel, n.Mode),
		Data: map[string]interface{}{
			"commitment_level":           n.Factors.CommitmentLevel,
			"connection_density":         n.Factors.ConnectionDensity,
			"goal_alignment":             n.Factors.GoalAlignment,
			"coordination_effectiveness": n.Factors.CoordinationEffectiveness,
			"score":                      n.StabilityScore,
			"formula":                    "mean(commitment, density, goal_alignment, coordination); >=0.7 high, >=0.4 medium",
		},
	}
}

func (s *Scorer) processCoverage(r *model.AnalysisResult) model.Signal {
	p := r.Process
	severity := model.SeverityInfo
	if len(p.Phases) == 0 {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalProcessCoverage,
		Severity:    severity,
		Description: fmt.Sprintf("%d process phase(s) detected, completion %.0f%%", len(p.Phases), p.CompletionRate*100),
		Data: map[string]interface{}{
			"phases":          len(p.Phases),
			"transitions":     len(p.Transitions),
			"critical_events": len(p.CriticalEvents),
			"completion_rate": p.CompletionRate,
			"canonical_order": p.CanonicalOrder,
			"formula":         "min(distinct_phases / 4, 1)",
		},
	}
}

// contradictions reports opposing stances; any high-severity finding is critical
func (s *Scorer) contradictions(r *model.AnalysisResult) (model.Signal, bool) {
	if len(r.Contradictions) == 0 {
		return model.Signal{}, false
	}

	severity := model.SeverityWarning
	counts := make(map[string]int)
	for _, c := range r.Contradictions {
		counts[c.ConflictType]++
		if c.Severity == model.LevelHigh {
			severity = model.SeverityCritical
		}
	}

	return model.Signal{
		Type:        model.SignalContradiction,
		Severity:    severity,
		Description: fmt.Sprintf("%d contradictory stance(s) detected", len(r.Contradictions)),
		Data: map[string]interface{}{
			"findings": len(r.Contradictions),
			"by_type":  counts,
		},
	}, true
}

func (s *Scorer) localization(l *model.LocalizationAnalysis) model.Signal {
	tags := make([]string, 0, len(l.Patterns))
	for _, p := range l.Patterns {
		tags = append(tags, p.MechanismTag)
	}

	return model.Signal{
		Type:        model.SignalLocalization,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("%d localized mobilization pattern(s), adaptation %s", len(l.Patterns), l.AdaptationLevel),
		Data: map[string]interface{}{
			"patterns":         tags,
			"adaptation_score": l.AdaptationScore,
			"formula":          "0.25 * non_empty_categories; >=0.75 high, >=0.5 medium",
		},
	}
}

// Effectiveness combines mean record effectiveness, network stability and
// normalized power total
func (s *Scorer) Effectiveness(r *model.AnalysisResult) model.Effectiveness {
	var mechanism float64
	if len(r.Mechanisms) > 0 {
		for _, rec := range r.Mechanisms {
			mechanism += rec.Effectiveness
		}
		mechanism /= float64(len(r.Mechanisms))
	}

	e := model.Effectiveness{
		Mechanism:          model.Clamp(mechanism),
		NetworkStability:   model.Clamp(r.Network.StabilityScore),
		PowerConsolidation: model.Clamp(r.Power.Effects.Total / powerDimensionsCount),
	}
	e.Overall = model.Clamp((e.Mechanism + e.NetworkStability + e.PowerConsolidation) / 3)
	e.Level = model.Rate(e.Overall, HighEffectiveness, MediumEffectiveness)
	return e
}
