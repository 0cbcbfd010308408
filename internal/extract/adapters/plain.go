package adapters

import "strings"

// PlainAdapter passes text and JSON documents through unchanged
type PlainAdapter struct{}

// NewPlainAdapter creates the fallback adapter
func NewPlainAdapter() *PlainAdapter {
	return &PlainAdapter{}
}

// Name returns the adapter name
func (a *PlainAdapter) Name() string {
	return "plain"
}

// CanHandle always returns true (fallback adapter)
func (a *PlainAdapter) CanHandle(url string, contentType string) bool {
	return true
}

// Narrative returns the content with a UTF-8 BOM removed
func (a *PlainAdapter) Narrative(content []byte, url string) (string, error) {
	return strings.TrimPrefix(string(content), "\ufeff"), nil
}
