package model

// NetworkMode records which calculator mode produced a section
type NetworkMode string

const (
	ModeStructured NetworkMode = "structured"
	ModeTextual    NetworkMode = "textual"
)

// NetworkActor is a pre-structured actor record
type NetworkActor struct {
	Name       string          `json:"name" yaml:"name"`
	Type       ActorType       `json:"type,omitempty" yaml:"type,omitempty"`
	Commitment float64         `json:"commitment" yaml:"commitment"`
	Resources  ResourceProfile `json:"resources" yaml:"resources"`
}

// ResourceProfile holds the resource attributes used for power scoring
type ResourceProfile struct {
	Political  float64 `json:"political" yaml:"political"`
	Economic   float64 `json:"economic" yaml:"economic"`
	Discursive float64 `json:"discursive" yaml:"discursive"`
	Symbolic   float64 `json:"symbolic" yaml:"symbolic"`
	Technical  float64 `json:"technical" yaml:"technical"`
	Cultural   float64 `json:"cultural" yaml:"cultural"`
}

// Connection is an edge between two structured actors
type Connection struct {
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	Strength float64 `json:"strength,omitempty" yaml:"strength,omitempty"`
}

// StabilityFactors are the four factors behind network stability
type StabilityFactors struct {
	CommitmentLevel           float64 `json:"commitment_level"`
	ConnectionDensity         float64 `json:"connection_density"`
	GoalAlignment             float64 `json:"goal_alignment"`
	CoordinationEffectiveness float64 `json:"coordination_effectiveness"`
}

// Mean returns the unweighted mean of the four factors
func (f StabilityFactors) Mean() float64 {
	return (f.CommitmentLevel + f.ConnectionDensity + f.GoalAlignment + f.CoordinationEffectiveness) / 4
}

// NetworkStructure is derived from its owning analysis
type NetworkStructure struct {
	NetworkType    string  `json:"network_type"`
	Connectivity   float64 `json:"connectivity"`
	Centralization float64 `json:"centralization"`
	Complexity     float64 `json:"complexity"`
}

// NetworkAnalysis has the same shape in both calculator modes
type NetworkAnalysis struct {
	Mode           NetworkMode      `json:"mode"`
	Factors        StabilityFactors `json:"stability_factors"`
	StabilityScore float64          `json:"stability_score"`
	StabilityLevel Level            `json:"stability_level"`
	Structure      NetworkStructure `json:"structure"`
}
