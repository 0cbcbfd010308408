package model

// BlackBoxType is one of the three fixed black-box kinds
type BlackBoxType string

const (
	BlackBoxTechnical     BlackBoxType = "technical"
	BlackBoxInstitutional BlackBoxType = "institutional"
	BlackBoxNetwork       BlackBoxType = "network"
)

// BlackBox is a construct stable and opaque enough to leave negotiation
type BlackBox struct {
	Type               BlackBoxType `json:"type"`
	FormationMechanism string       `json:"formation_mechanism"`
	Stability          float64      `json:"stability"`
	Opacity            float64      `json:"opacity"`
	Irreversibility    float64      `json:"irreversibility"`
	Indicators         []string     `json:"indicators"`
}

// PowerEffects scores influence gained through translation.
// Total is the raw sum of the four dimensions, not an average.
type PowerEffects struct {
	Institutional float64 `json:"institutional"`
	Discursive    float64 `json:"discursive"`
	Technical     float64 `json:"technical"`
	Symbolic      float64 `json:"symbolic"`
	Total         float64 `json:"total"`
}

// Dimensions returns the four dimensions in fixed order
func (p PowerEffects) Dimensions() []float64 {
	return []float64{p.Institutional, p.Discursive, p.Technical, p.Symbolic}
}

// PowerDistribution summarizes how power is spread across dimensions
type PowerDistribution struct {
	PowerCentralization float64 `json:"power_centralization"`
	PowerDiversity      float64 `json:"power_diversity"`
	PowerBalance        float64 `json:"power_balance"`
}

// PowerAnalysis is the power section of a phase result
type PowerAnalysis struct {
	Mode         NetworkMode       `json:"mode"`
	Effects      PowerEffects      `json:"effects"`
	Distribution PowerDistribution `json:"power_distribution"`
}
