// Package validate checks the structural completeness of a phase analysis
// and synthesizes the final result.
package validate

import (
	"errors"
	"fmt"

	"github.com/ppiankov/actornet/internal/localize"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/network"
	"github.com/ppiankov/actornet/internal/power"
	"github.com/ppiankov/actornet/internal/process"
	"github.com/ppiankov/actornet/internal/score"
)

// ErrIncomplete marks a draft missing a required section
var ErrIncomplete = errors.New("incomplete analysis")

// Draft is the output of the feeding stages before synthesis. A nil
// section means its stage failed or never ran.
type Draft struct {
	Phase          model.Phase
	Mechanisms     []model.ExtractionRecord
	Actors         []model.Actor
	ResourceFlows  []model.ResourceFlow
	Contradictions []model.Contradiction
	Network        *model.NetworkAnalysis
	BlackBoxes     []model.BlackBox
	Power          *model.PowerAnalysis
	Process        *model.ProcessTimeline
	Localization   *model.LocalizationAnalysis
}

// Check reports every missing required section: mechanisms, black-box
// formation and power effects
func Check(d *Draft) error {
	if d == nil {
		return fmt.Errorf("%w: no draft", ErrIncomplete)
	}

	var errs []error
	if d.Mechanisms == nil {
		errs = append(errs, fmt.Errorf("%w: mechanisms missing", ErrIncomplete))
	}
	if d.BlackBoxes == nil {
		errs = append(errs, fmt.Errorf("%w: black_box_formation missing", ErrIncomplete))
	}
	if d.Power == nil {
		errs = append(errs, fmt.Errorf("%w: power_effects missing", ErrIncomplete))
	}
	return errors.Join(errs...)
}

// Synthesizer validates drafts and assembles scored results
type Synthesizer struct {
	scorer *score.Scorer
}

// NewSynthesizer creates a synthesizer
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{scorer: score.NewScorer()}
}

// Synthesize is the join point of a phase analysis. A draft failing Check
// is discarded in favor of DefaultResult; the error is returned only so
// callers can log it.
func (s *Synthesizer) Synthesize(d *Draft) (model.AnalysisResult, error) {
	if err := Check(d); err != nil {
		phase := model.PhaseMobilization
		if d != nil {
			phase = d.Phase
		}
		return DefaultResult(phase), err
	}

	res := DefaultResult(d.Phase)
	res.Mechanisms = d.Mechanisms
	res.BlackBoxes = d.BlackBoxes
	res.Power = *d.Power
	if d.Actors != nil {
		res.Actors = d.Actors
	}
	if d.ResourceFlows != nil {
		res.ResourceFlows = d.ResourceFlows
	}
	if d.Contradictions != nil {
		res.Contradictions = d.Contradictions
	}
	if d.Network != nil {
		res.Network = *d.Network
	}
	if d.Process != nil {
		res.Process = *d.Process
	}
	if d.Phase == model.PhaseMobilization && d.Localization != nil {
		res.Localization = d.Localization
	}

	res.HasFindings = len(res.Mechanisms) > 0 || len(res.BlackBoxes) > 0 || len(res.Process.Phases) > 0
	res.HasMobilization = d.Phase == model.PhaseMobilization && res.HasFindings

	res.Effectiveness = s.scorer.Effectiveness(&res)
	res.Compliance = s.scorer.Compliance(&res)
	return res, nil
}

// DefaultResult is the fixed empty result returned for empty, malformed or
// incomplete analyses. Every collection is empty rather than nil so callers
// can always destructure the same shape.
func DefaultResult(phase model.Phase) model.AnalysisResult {
	res := model.AnalysisResult{
		Phase:          phase,
		Mechanisms:     []model.ExtractionRecord{},
		Actors:         []model.Actor{},
		ResourceFlows:  []model.ResourceFlow{},
		Contradictions: []model.Contradiction{},
		Network:        network.Empty(),
		BlackBoxes:     []model.BlackBox{},
		Power:          power.Empty(),
		Process:        process.Empty(),
		Effectiveness:  model.Effectiveness{Level: model.LevelLow},
		Compliance:     model.Compliance{Level: model.LevelLow, Signals: []model.Signal{}},
	}
	if phase == model.PhaseMobilization {
		res.Localization = localize.Empty()
	}
	return res
}
