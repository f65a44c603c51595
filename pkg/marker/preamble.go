// Package marker provides the pure marker detectors for bilingual statute
// text: preamble and enactment-clause detection, section-marker counting,
// and parenthesized clause markers. Every detector is a deterministic,
// non-mutating scan over its text argument; absent or blank input yields
// the detector's zero shape, never an error.
package marker

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/coolbeans/ainlex/pkg/grammar"
)

// ClauseSignal reports whether a structural clause (preamble or enactment)
// was found. One internal boolean is serialized under two equivalent field
// names, kept for compatibility with older consumers.
type ClauseSignal struct {
	Detected bool
	// Offset is the start of the earliest match, nil when absent.
	Offset *int
	// Markers holds the distinct matched marker strings in first-seen
	// order.
	Markers []string
}

type clauseSignalJSON struct {
	Detected  bool     `json:"detected"`
	IsPresent bool     `json:"is_present"`
	Offset    *int     `json:"offset"`
	Markers   []string `json:"markers"`
}

// MarshalJSON emits the boolean under both field names.
func (s ClauseSignal) MarshalJSON() ([]byte, error) {
	markers := s.Markers
	if markers == nil {
		markers = []string{}
	}
	return json.Marshal(clauseSignalJSON{
		Detected:  s.Detected,
		IsPresent: s.Detected,
		Offset:    s.Offset,
		Markers:   markers,
	})
}

// UnmarshalJSON accepts either field name; "detected" wins when both are
// present.
func (s *ClauseSignal) UnmarshalJSON(data []byte) error {
	var raw clauseSignalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Detected = raw.Detected || raw.IsPresent
	s.Offset = raw.Offset
	s.Markers = raw.Markers
	return nil
}

// Detector runs the marker scans against one grammar profile.
type Detector struct {
	profile *grammar.Profile
}

// NewDetector creates a Detector over the default grammar profile.
func NewDetector() *Detector {
	return &Detector{profile: grammar.Default()}
}

// NewDetectorWithProfile creates a Detector over an injected profile. The
// profile must be compiled.
func NewDetectorWithProfile(profile *grammar.Profile) *Detector {
	return &Detector{profile: profile}
}

// DetectPreamble scans for preamble markers (যেহেতু / এবং যেহেতু, WHEREAS
// and variants).
func (d *Detector) DetectPreamble(text string) ClauseSignal {
	return scanMarkers(text, d.profile.PreambleRegexps())
}

// DetectEnactmentClause scans for enactment markers (সেহেতু এতদ্বারা আইন
// করা হইল, "Be it enacted", "IT IS HEREBY ENACTED").
func (d *Detector) DetectEnactmentClause(text string) ClauseSignal {
	return scanMarkers(text, d.profile.EnactmentRegexps())
}

func scanMarkers(text string, patterns []*regexp.Regexp) ClauseSignal {
	signal := ClauseSignal{Markers: []string{}}
	if strings.TrimSpace(text) == "" {
		return signal
	}

	earliest := -1
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			if !seen[matched] {
				seen[matched] = true
				signal.Markers = append(signal.Markers, matched)
			}
			if earliest < 0 || loc[0] < earliest {
				earliest = loc[0]
			}
		}
	}

	if earliest >= 0 {
		signal.Detected = true
		signal.Offset = &earliest
	}
	return signal
}

var defaultDetector = NewDetector()

// DetectPreamble runs the default detector.
func DetectPreamble(text string) ClauseSignal {
	return defaultDetector.DetectPreamble(text)
}

// DetectEnactmentClause runs the default detector.
func DetectEnactmentClause(text string) ClauseSignal {
	return defaultDetector.DetectEnactmentClause(text)
}
