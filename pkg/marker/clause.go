package marker

import "strings"

// ClauseMarker is one parenthesized clause marker found in a text slice.
// Marker is the verbatim matched text, never transliterated;
// RelativeOffset addresses the text argument the marker was found in.
type ClauseMarker struct {
	Marker         string `json:"marker"`
	RelativeOffset int    `json:"relative_offset"`
}

// DetectClauses finds parenthesized markers drawn from the profile's clause
// alphabet (ক…ঢ in the default profile). Offsets are strictly ascending.
// Blank or matchless input yields an empty list.
func (d *Detector) DetectClauses(content string) []ClauseMarker {
	clauses := []ClauseMarker{}
	if strings.TrimSpace(content) == "" {
		return clauses
	}
	for _, loc := range d.profile.ClauseRegexp().FindAllStringIndex(content, -1) {
		clauses = append(clauses, ClauseMarker{
			Marker:         content[loc[0]:loc[1]],
			RelativeOffset: loc[0],
		})
	}
	return clauses
}

// DetectClauses runs the default detector.
func DetectClauses(content string) []ClauseMarker {
	return defaultDetector.DetectClauses(content)
}
