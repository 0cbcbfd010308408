// Package network computes network stability and structure from either
// explicit actor/connection data or literal cues in the narrative.
package network

import (
	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// Fixed scaling factors
const (
	// DensityScale is the expected number of edges per actor in a fully
	// connected alliance; edge count is normalized by actors*DensityScale.
	DensityScale = 2.0

	GoalWeight         = 0.3  // Per shared goal
	CoordinationWeight = 0.25 // Per coordination mechanism
	CueIncrement       = 0.15 // Per distinct cue in textual mode

	HighStability   = 0.7
	MediumStability = 0.4
)

// Network types
const (
	TypeNone        = "none"
	TypeCentralized = "centralized"
	TypeDense       = "dense"
	TypeDistributed = "distributed"
)

// Calculator computes network analyses
type Calculator struct {
	cues *rules.NetworkCues
}

// NewCalculator creates a calculator over a rule set
func NewCalculator(rs *rules.RuleSet) *Calculator {
	return &Calculator{cues: &rs.Network}
}

// Analyze selects the mode by input shape: structured input carrying actors
// or connections is computed from that data, anything else from the text.
// actors are the deduplicated actors extracted from the narrative.
func (c *Calculator) Analyze(in model.Input, doc *extract.Document, actors []model.Actor) model.NetworkAnalysis {
	if s, ok := in.(model.StructuredInput); ok && s.HasNetwork() {
		return Structured(s)
	}
	return c.Textual(doc, actors)
}

// Structured computes the four stability factors from explicit data.
// Missing collections count as empty.
func Structured(in model.StructuredInput) model.NetworkAnalysis {
	g := newGraph(in)

	var commitment float64
	if len(in.Actors) > 0 {
		for _, a := range in.Actors {
			commitment += model.Clamp(a.Commitment)
		}
		commitment /= float64(len(in.Actors))
	}

	var density float64
	if g.nodes > 0 {
		density = model.Clamp(float64(g.edges) / (float64(g.nodes) * DensityScale))
	}

	factors := model.StabilityFactors{
		CommitmentLevel:           commitment,
		ConnectionDensity:         density,
		GoalAlignment:             model.Clamp(GoalWeight * float64(len(in.SharedGoals))),
		CoordinationEffectiveness: model.Clamp(CoordinationWeight * float64(len(in.CoordinationMechanisms))),
	}

	centralization := g.centralization()
	structure := model.NetworkStructure{
		NetworkType:    classify(g.nodes, density, centralization),
		Connectivity:   density,
		Centralization: centralization,
		Complexity:     model.Clamp(float64(g.nodes)/10 + float64(g.edges)/20),
	}

	return result(model.ModeStructured, factors, structure)
}

// Textual estimates stability from cue counts, CueIncrement per distinct cue
func (c *Calculator) Textual(doc *extract.Document, actors []model.Actor) model.NetworkAnalysis {
	lower := doc.Lower
	factors := model.StabilityFactors{
		CommitmentLevel:           cueScore(c.cues.Commitment, lower),
		ConnectionDensity:         cueScore(c.cues.Connection, lower),
		GoalAlignment:             cueScore(c.cues.GoalAlignment, lower),
		CoordinationEffectiveness: cueScore(c.cues.Coordination, lower),
	}

	types := make(map[model.ActorType]bool)
	for _, a := range actors {
		types[a.ClassifiedType] = true
	}

	centralization := cueScore(c.cues.Centralization, lower)
	structure := model.NetworkStructure{
		NetworkType:    classify(len(actors), factors.ConnectionDensity, centralization),
		Connectivity:   factors.ConnectionDensity,
		Centralization: centralization,
		Complexity:     model.Clamp(0.2*float64(len(types)) + float64(len(actors))/20),
	}

	return result(model.ModeTextual, factors, structure)
}

func cueScore(cues rules.Cues, lower string) float64 {
	return model.Clamp(CueIncrement * float64(cues.Count(lower)))
}

func result(mode model.NetworkMode, factors model.StabilityFactors, structure model.NetworkStructure) model.NetworkAnalysis {
	score := model.Clamp(factors.Mean())
	return model.NetworkAnalysis{
		Mode:           mode,
		Factors:        factors,
		StabilityScore: score,
		StabilityLevel: model.Rate(score, HighStability, MediumStability),
		Structure:      structure,
	}
}

func classify(actors int, density, centralization float64) string {
	switch {
	case actors == 0:
		return TypeNone
	case centralization >= 0.6:
		return TypeCentralized
	case density >= 0.6:
		return TypeDense
	default:
		return TypeDistributed
	}
}

// Empty returns the default analysis used when the network stage is missing
func Empty() model.NetworkAnalysis {
	return model.NetworkAnalysis{
		Mode:           model.ModeTextual,
		StabilityLevel: model.LevelLow,
		Structure:      model.NetworkStructure{NetworkType: TypeNone},
	}
}
