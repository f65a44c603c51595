// Package content provides the three-view content record for statute text
// and the offset primitives every other package addresses positions with.
//
// Offsets are byte offsets into the raw view only. The normalized and
// corrected views may differ in length and must never be used for
// addressing.
package content

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Corrector post-processes normalized text. The OCR/formatting remediation
// engine implements this; the core only provides the injection point.
type Corrector interface {
	Correct(text string) string
}

// CorrectorFunc adapts a plain function to the Corrector interface.
type CorrectorFunc func(text string) string

// Correct calls f.
func (f CorrectorFunc) Correct(text string) string { return f(text) }

// Record holds the three immutable views of one document. Raw is the
// byte-identical source of truth; Normalized is the NFC canonicalization;
// Corrected is Normalized after remediation.
type Record struct {
	Raw        string `json:"content_raw"`
	Normalized string `json:"content_normalized"`
	Corrected  string `json:"content_corrected"`
}

// NewRecord builds a Record from raw text without modifying it. When
// corrector is nil the corrected view equals the normalized view.
func NewRecord(raw string, corrector Corrector) Record {
	normalized := norm.NFC.String(raw)
	corrected := normalized
	if corrector != nil {
		corrected = corrector.Correct(normalized)
	}
	return Record{
		Raw:        raw,
		Normalized: normalized,
		Corrected:  corrected,
	}
}

// LocateOffset returns the first byte index >= searchStart at which needle
// occurs in haystack, or -1. The needle is trimmed of leading and trailing
// whitespace before searching; an empty needle or haystack (after trim)
// yields -1. A negative searchStart is treated as 0.
//
// This is the single source of truth for position bookkeeping: callers must
// use it instead of recomputing offsets independently.
func LocateOffset(needle, haystack string, searchStart int) int {
	trimmed := strings.TrimSpace(needle)
	if trimmed == "" || haystack == "" {
		return -1
	}
	if searchStart < 0 {
		searchStart = 0
	}
	if searchStart >= len(haystack) {
		return -1
	}
	idx := strings.Index(haystack[searchStart:], trimmed)
	if idx < 0 {
		return -1
	}
	return searchStart + idx
}

// LineNumber returns the 1-based line number of the byte offset in text:
// the count of preceding newline characters plus one. Offsets outside
// [0, len(text)] are clamped.
func LineNumber(text string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}

// Window returns up to size bytes of context on each side of the span
// [start, end). Both windows are aligned to rune boundaries so that a
// window never splits a UTF-8 sequence.
func Window(text string, start, end, size int) (before, after string) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end || size <= 0 {
		return "", ""
	}

	lo := start - size
	if lo < 0 {
		lo = 0
	}
	for lo < start && !utf8.RuneStart(text[lo]) {
		lo++
	}

	hi := end + size
	if hi > len(text) {
		hi = len(text)
	}
	for hi > end && hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi--
	}

	return text[lo:start], text[end:hi]
}
