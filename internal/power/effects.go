package power

import (
	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// DefaultSymbolicPower stands in for the symbolic dimension in structured
// mode. Resource profiles feed symbolic capital into the discursive pair,
// so there is nothing separate to average.
const DefaultSymbolicPower = 0.6

// Textual tiers by distinct cue count
const (
	TierHigh   = 0.8 // 3 or more cues
	TierMedium = 0.6 // 2 cues
	TierLow    = 0.4 // 1 cue
)

// Calculator computes power effects
type Calculator struct {
	rules *rules.RuleSet
}

// NewCalculator creates a calculator over a rule set
func NewCalculator(rs *rules.RuleSet) *Calculator {
	return &Calculator{rules: rs}
}

// Analyze selects the mode by input shape, mirroring the network calculator
func (c *Calculator) Analyze(in model.Input, doc *extract.Document) model.PowerAnalysis {
	if s, ok := in.(model.StructuredInput); ok && s.HasNetwork() {
		return c.Structured(s)
	}
	return c.Textual(doc)
}

// Structured averages a resource pair per actor over the actors of the
// matching classification. Actors without a type are classified by name.
func (c *Calculator) Structured(in model.StructuredInput) model.PowerAnalysis {
	var inst, disc, tech mean
	for _, a := range in.Actors {
		typ := a.Type
		if typ == "" {
			typ = c.rules.Lexicon.Classify(a.Name)
		}
		r := a.Resources
		switch typ {
		case model.ActorGovernment:
			inst.add((model.Clamp(r.Political) + model.Clamp(r.Economic)) / 2)
		case model.ActorPublic, model.ActorOther:
			disc.add((model.Clamp(r.Discursive) + model.Clamp(r.Symbolic)) / 2)
		case model.ActorExpert, model.ActorEnterprise:
			tech.add((model.Clamp(r.Technical) + model.Clamp(r.Cultural)) / 2)
		}
	}

	return analysis(model.ModeStructured, model.PowerEffects{
		Institutional: inst.value(),
		Discursive:    disc.value(),
		Technical:     tech.value(),
		Symbolic:      DefaultSymbolicPower,
	})
}

// Textual scores each dimension by its distinct cue count
func (c *Calculator) Textual(doc *extract.Document) model.PowerAnalysis {
	pc := &c.rules.Power
	return analysis(model.ModeTextual, model.PowerEffects{
		Institutional: tier(pc.Institutional.Count(doc.Lower)),
		Discursive:    tier(pc.Discursive.Count(doc.Lower)),
		Technical:     tier(pc.Technical.Count(doc.Lower)),
		Symbolic:      tier(pc.Symbolic.Count(doc.Lower)),
	})
}

func tier(n int) float64 {
	switch {
	case n >= 3:
		return TierHigh
	case n == 2:
		return TierMedium
	case n == 1:
		return TierLow
	default:
		return 0
	}
}

// analysis fills Total as the raw sum of the four dimensions and derives
// the distribution
func analysis(mode model.NetworkMode, e model.PowerEffects) model.PowerAnalysis {
	e.Institutional = model.Clamp(e.Institutional)
	e.Discursive = model.Clamp(e.Discursive)
	e.Technical = model.Clamp(e.Technical)
	e.Symbolic = model.Clamp(e.Symbolic)
	e.Total = e.Institutional + e.Discursive + e.Technical + e.Symbolic

	return model.PowerAnalysis{
		Mode:         mode,
		Effects:      e,
		Distribution: Distribution(e),
	}
}

// Distribution computes centralization (max/sum), diversity (nonzero/4) and
// balance (min/max). Zero sums and maxima yield 0.
func Distribution(e model.PowerEffects) model.PowerDistribution {
	dims := e.Dimensions()

	var sum, hi float64
	lo := dims[0]
	nonzero := 0
	for _, d := range dims {
		sum += d
		hi = max(hi, d)
		lo = min(lo, d)
		if d > 0 {
			nonzero++
		}
	}

	var dist model.PowerDistribution
	if sum > 0 {
		dist.PowerCentralization = model.Clamp(hi / sum)
	}
	dist.PowerDiversity = float64(nonzero) / float64(len(dims))
	if hi > 0 {
		dist.PowerBalance = model.Clamp(lo / hi)
	}
	return dist
}

// Empty returns the zero analysis used when the power stage is missing
func Empty() model.PowerAnalysis {
	return model.PowerAnalysis{Mode: model.ModeTextual}
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}
