package model

// Significance ranks a critical event
type Significance string

const (
	SignificanceCritical Significance = "critical"
	SignificanceMajor    Significance = "major"
	SignificanceMinor    Significance = "minor"
)

// Duration sources for a process phase
const (
	DurationDefault  = "default"
	DurationExplicit = "explicit"
)

// ProcessPhase is one reconstructed stage of the process timeline
type ProcessPhase struct {
	PhaseID        string   `json:"phase_id"`
	Cue            string   `json:"cue"`
	Objectives     []string `json:"objectives"`
	Activities     []string `json:"activities"`
	Duration       string   `json:"duration"`
	DurationSource string   `json:"duration_source"`
}

// Transition links two consecutive phases through a sequencing connective
type Transition struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Connective string `json:"connective"`
}

// CriticalEvent is a named event from the fixed event list
type CriticalEvent struct {
	Event        string       `json:"event"`
	Significance Significance `json:"significance"`
	Timing       string       `json:"timing"`
	Impact       string       `json:"impact"`
}

// ProcessTimeline is the process section of a phase result
type ProcessTimeline struct {
	Phases         []ProcessPhase  `json:"phases"`
	Transitions    []Transition    `json:"transitions"`
	CriticalEvents []CriticalEvent `json:"critical_events"`
	CompletionRate float64         `json:"completion_rate"`
	CanonicalOrder bool            `json:"canonical_order"` // Phases appear in the text in model order
}
