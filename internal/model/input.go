package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedInput marks input that cannot be decoded into either variant
var ErrMalformedInput = errors.New("malformed input")

// Input is the tagged union accepted by the analyzer: TextInput or StructuredInput
type Input interface {
	// Narrative returns the free-form text carried by the input (may be empty)
	Narrative() string

	isInput()
}

// TextInput is a free-form narrative
type TextInput struct {
	Text string `json:"text"`
}

// Narrative returns the text
func (t TextInput) Narrative() string { return t.Text }

func (TextInput) isInput() {}

// StructuredInput carries explicit network data for the network and power
// calculators. Missing collections are treated as empty.
type StructuredInput struct {
	Actors                 []NetworkActor `json:"actors"`
	Connections            []Connection   `json:"connections"`
	SharedGoals            []string       `json:"shared_goals"`
	CoordinationMechanisms []string       `json:"coordination_mechanisms"`
	Text                   string         `json:"text,omitempty"` // Optional narrative for the text stages
}

// Narrative returns the optional narrative
func (s StructuredInput) Narrative() string { return s.Text }

func (StructuredInput) isInput() {}

// HasNetwork reports whether explicit actors or connections were supplied
func (s StructuredInput) HasNetwork() bool {
	return len(s.Actors) > 0 || len(s.Connections) > 0
}

var structuredKeys = []string{"actors", "connections", "shared_goals", "coordination_mechanisms"}

// DecodeInput selects the input variant by shape. Non-JSON data is a narrative;
// a JSON object with any structured key is a StructuredInput; a JSON object with
// a string "text" is a TextInput. Anything else is ErrMalformedInput.
func DecodeInput(data []byte) (Input, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return TextInput{Text: string(data)}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// A narrative that happens to start with a brace
		return TextInput{Text: string(data)}, nil
	}

	for _, key := range structuredKeys {
		if _, ok := fields[key]; ok {
			var in StructuredInput
			if err := json.Unmarshal(trimmed, &in); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			return in, nil
		}
	}

	if raw, ok := fields["text"]; ok {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("%w: text must be a string", ErrMalformedInput)
		}
		return TextInput{Text: text}, nil
	}

	return nil, fmt.Errorf("%w: no text or structured fields", ErrMalformedInput)
}

// InputMode names the variant for reports
func InputMode(in Input) string {
	switch in.(type) {
	case StructuredInput:
		return "structured"
	case TextInput:
		return "text"
	default:
		return "malformed"
	}
}
