package model

import "time"

// Report is the complete actornet output for one source
type Report struct {
	RunID        string           `json:"run_id"`
	Subject      string           `json:"subject"`      // Human-readable name of the source
	Source       string           `json:"source"`       // File path, URL or "-"
	GeneratedAt  time.Time        `json:"generated_at"` // When the analysis ran
	RulesVersion string           `json:"rules_version"`
	InputMode    string           `json:"input_mode"` // text, structured, malformed
	Results      []AnalysisResult `json:"results"`    // One per phase, canonical order
	Principles   Principles       `json:"principles"`
}

// AnalysisResult is the root record of one phase analysis.
// It is never mutated after synthesis.
type AnalysisResult struct {
	Phase           Phase `json:"phase"`
	HasFindings     bool  `json:"has_findings"`
	HasMobilization bool  `json:"has_mobilization"`

	Mechanisms     []ExtractionRecord `json:"mechanisms"`
	Actors         []Actor            `json:"actors"`
	ResourceFlows  []ResourceFlow     `json:"resource_flows"`
	Contradictions []Contradiction    `json:"contradictions"`

	Network    NetworkAnalysis `json:"network"`
	BlackBoxes []BlackBox      `json:"black_box_formation"`
	Power      PowerAnalysis   `json:"power_effects"`
	Process    ProcessTimeline `json:"process"`

	Localization *LocalizationAnalysis `json:"chinese_patterns,omitempty"` // Mobilization only

	Effectiveness Effectiveness `json:"effectiveness"`
	Compliance    Compliance    `json:"compliance"`
}

// Effectiveness combines mechanism, network and power outcomes
type Effectiveness struct {
	Mechanism          float64 `json:"mechanism"`
	NetworkStability   float64 `json:"network_stability"`
	PowerConsolidation float64 `json:"power_consolidation"`
	Overall            float64 `json:"overall"`
	Level              Level   `json:"level"`
}

// Compliance is the theory-compliance score and its transparent breakdown
type Compliance struct {
	Score   float64  `json:"score"`
	Level   Level    `json:"level"`
	Signals []Signal `json:"signals"`
}

// Signal represents a diagnostic signal with transparent scoring data
type Signal struct {
	Type        SignalType     `json:"type"`
	Severity    SignalSeverity `json:"severity"`
	Description string         `json:"description"`
	Data        map[string]any `json:"data,omitempty"` // Formulas and inputs
}

// SignalType classifies the type of diagnostic signal
type SignalType string

const (
	SignalMechanisms       SignalType = "mechanisms"        // Extraction records present
	SignalBlackBoxes       SignalType = "black_boxes"       // Stabilized constructs present
	SignalPowerEffects     SignalType = "power_effects"     // Nonzero power gained
	SignalNetworkStability SignalType = "network_stability" // Stability factor mean
	SignalProcessCoverage  SignalType = "process_coverage"  // Timeline completion
	SignalContradiction    SignalType = "contradiction"     // Opposing stances
	SignalLocalization     SignalType = "localization"      // Culture-specific idioms
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// Principles documents which core principles were applied
type Principles struct {
	Deterministic bool `json:"deterministic"` // Same text + same rules, same output
	Transparent   bool `json:"transparent"`   // All scoring explainable
	RuleBased     bool `json:"rule_based"`    // Literal cues only, no learned inference
}

// DefaultPrinciples returns the standard actornet principles
func DefaultPrinciples() Principles {
	return Principles{
		Deterministic: true,
		Transparent:   true,
		RuleBased:     true,
	}
}

// FindResult returns the result for a phase, if present
func (r *Report) FindResult(phase Phase) (AnalysisResult, bool) {
	for _, res := range r.Results {
		if res.Phase == phase {
			return res, true
		}
	}
	return AnalysisResult{}, false
}
