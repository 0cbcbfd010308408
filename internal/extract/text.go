package extract

import (
	"strings"
	"unicode"
)

// Span is one sentence of a narrative
type Span struct {
	Text  string // Trimmed original sentence
	Lower string // Lower-cased Text, used for cue matching
	Start int    // Byte offset of Lower inside Document.Lower
}

// Document is a narrative split into sentences. It is read-only once built
// and shared by every stage of an analysis.
type Document struct {
	Spans []Span
	Lower string // Span.Lower values joined by newlines
}

// NewDocument splits text into sentence spans
func NewDocument(text string) *Document {
	doc := &Document{}
	var lower strings.Builder
	for _, sentence := range SplitSentences(text) {
		l := strings.ToLower(sentence)
		if lower.Len() > 0 {
			lower.WriteByte('\n')
		}
		doc.Spans = append(doc.Spans, Span{Text: sentence, Lower: l, Start: lower.Len()})
		lower.WriteString(l)
	}
	doc.Lower = lower.String()
	return doc
}

// Empty reports whether the document has no sentences
func (d *Document) Empty() bool {
	return len(d.Spans) == 0
}

// SpanAt returns the index of the span containing byte offset pos of Lower, or -1
func (d *Document) SpanAt(pos int) int {
	for i, s := range d.Spans {
		if pos >= s.Start && pos < s.Start+len(s.Lower) {
			return i
		}
	}
	return -1
}

// SplitSentences splits text on CJK and Latin sentence terminators and newlines.
// A Latin period only ends a sentence before whitespace or end of text, so
// decimals like 3.5 survive.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		switch r {
		case '\n', '\r':
			flush()
			continue
		case '。', '！', '？', '；', '!', '?', ';':
			current.WriteRune(r)
			flush()
			continue
		case '.':
			current.WriteRune(r)
			if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
				flush()
			}
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}
