package rules

import (
	"strings"
	"unicode/utf8"
)

// Index returns the byte offset of the first occurrence of cue in s at or
// after from, or -1. A cue edge that is an ASCII letter or digit must not
// touch another ASCII letter or digit, so "public" never matches inside
// "publicity". CJK cues match as plain substrings.
func Index(s, cue string, from int) int {
	if cue == "" || from < 0 || from > len(s) {
		return -1
	}
	first, _ := utf8.DecodeRuneInString(cue)
	last, _ := utf8.DecodeLastRuneInString(cue)
	checkLeft, checkRight := isWordByte(first), isWordByte(last)

	for from <= len(s) {
		idx := strings.Index(s[from:], cue)
		if idx < 0 {
			return -1
		}
		start := from + idx
		end := start + len(cue)

		leftOK := !checkLeft || start == 0 || !isWordByte(rune(s[start-1]))
		rightOK := !checkRight || end == len(s) || !isWordByte(rune(s[end]))
		if leftOK && rightOK {
			return start
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return -1
}

// Contains reports whether cue occurs in s as a whole word (ASCII) or
// substring (CJK)
func Contains(s, cue string) bool {
	return Index(s, cue, 0) >= 0
}

// isWordByte reports ASCII letters, digits and underscore. Bytes of
// multi-byte runes are never word bytes.
func isWordByte(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
