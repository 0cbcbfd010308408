package model

// Level is a coarse three-step rating used across the analysis
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// ActorType is the fixed classification of an actor label
type ActorType string

const (
	ActorGovernment ActorType = "government"
	ActorEnterprise ActorType = "enterprise"
	ActorPublic     ActorType = "public"
	ActorExpert     ActorType = "expert"
	ActorOther      ActorType = "other"
)

// Placeholder actor names used when a span names no actor
const (
	PlaceholderParticipant = "participant" // default target set
	PlaceholderInitiator   = "initiator"   // default initiating actor
)

// ExtractionRecord is one pattern-rule match over a span of the narrative
type ExtractionRecord struct {
	Type            string         `json:"type"`          // Rule category
	Name            string         `json:"name"`          // Trigger cue that fired
	SourceSpan      string         `json:"source_span"`   // Sentence the rule matched
	Actor           string         `json:"actor"`         // Initiating actor label
	Mechanism       string         `json:"mechanism"`     // Derived from the mechanism priority list
	TargetActors    []string       `json:"target_actors"` // Never empty
	Effectiveness   float64        `json:"effectiveness"` // [0,1]
	Characteristics []string       `json:"characteristics"`
	Implementation  Implementation `json:"implementation"`
}

// Implementation describes how a mechanism was carried out
type Implementation struct {
	Method    string   `json:"method"`
	Scale     string   `json:"scale"`
	Duration  string   `json:"duration"`
	Resources []string `json:"resources"`
}

// Actor is a classified participant of the network
type Actor struct {
	Name              string    `json:"name"`
	ClassifiedType    ActorType `json:"classified_type"`
	MobilizationLevel Level     `json:"mobilization_level"`
	ContributionLevel Level     `json:"contribution_level"`
}

// FlowDirection is the direction of a resource flow
type FlowDirection string

const (
	FlowTopDown       FlowDirection = "top_down"
	FlowBottomUp      FlowDirection = "bottom_up"
	FlowHorizontal    FlowDirection = "horizontal"
	FlowBidirectional FlowDirection = "bidirectional"
)

// FlowMechanism is the allocation mechanism behind a resource flow
type FlowMechanism string

const (
	FlowFiscalTransfer           FlowMechanism = "fiscal_transfer"
	FlowMarketAllocation         FlowMechanism = "market_allocation"
	FlowAdministrativeAllocation FlowMechanism = "administrative_allocation"
	FlowMixedMechanism           FlowMechanism = "mixed_mechanism"
)

// ResourceFlow is a resource movement detected in a record's span
type ResourceFlow struct {
	Record    string        `json:"record"` // Name of the record the flow was found in
	Direction FlowDirection `json:"direction"`
	Mechanism FlowMechanism `json:"mechanism"`
	Volume    Level         `json:"volume"`
}

// Contradiction is an opposing-stance finding surfaced instead of an error
type Contradiction struct {
	Actors       []string `json:"actors"`
	ConflictType string   `json:"conflict_type"` // stance_reversal, interest_conflict
	Severity     Level    `json:"severity"`
	Evidence     string   `json:"evidence,omitempty"` // First sentence that produced the finding
}

// Clamp bounds a score to [0,1]
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rate maps a bounded score to a level: >= high is high, >= medium is medium
func Rate(score, high, medium float64) Level {
	switch {
	case score >= high:
		return LevelHigh
	case score >= medium:
		return LevelMedium
	default:
		return LevelLow
	}
}
