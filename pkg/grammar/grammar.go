// Package grammar provides the immutable pattern and keyword tables the
// detectors run against: citation grammars, preamble/enactment markers,
// section-marker patterns, the clause alphabet, relation keywords and
// negation cues. Tables are plain data loadable from YAML profiles; every
// regex is validated and compiled at load time so malformed configuration
// is reported once, never per call.
package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Script tags which writing system a citation rule targets.
type Script string

const (
	ScriptBengali Script = "bengali"
	ScriptEnglish Script = "english"
)

// Group names a citation rule may map to capture-group indexes.
const (
	GroupYear    = "year"
	GroupSerial  = "serial"
	GroupActType = "act_type"
)

// CitationRule defines one citation shape. Groups maps component names to
// capture-group indexes in Pattern; ActType supplies a fixed act type for
// shapes that do not capture one (e.g. Presidential Orders).
type CitationRule struct {
	ID      string         `yaml:"id" json:"id"`
	Script  Script         `yaml:"script" json:"script"`
	Pattern string         `yaml:"pattern" json:"pattern"`
	ActType string         `yaml:"act_type,omitempty" json:"act_type,omitempty"`
	Groups  map[string]int `yaml:"groups" json:"groups"`

	compiled *regexp.Regexp
}

// Regexp returns the compiled pattern, or nil before Compile.
func (r *CitationRule) Regexp() *regexp.Regexp { return r.compiled }

// RelationRule maps a lexical relation to the keywords that signal it.
// Rule order is classification priority order.
type RelationRule struct {
	Relation string   `yaml:"relation" json:"relation"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// SectionMarkerPatterns holds the regexes for the independent section
// marker counters.
type SectionMarkerPatterns struct {
	Dhara        string `yaml:"dhara" json:"dhara"`
	Chapter      string `yaml:"chapter" json:"chapter"`
	Schedule     string `yaml:"schedule" json:"schedule"`
	NumeralDanda string `yaml:"numeral_danda" json:"numeral_danda"`

	dharaCompiled        *regexp.Regexp
	chapterCompiled      *regexp.Regexp
	scheduleCompiled     *regexp.Regexp
	numeralDandaCompiled *regexp.Regexp
}

// DharaRegexp returns the compiled dhara pattern.
func (s *SectionMarkerPatterns) DharaRegexp() *regexp.Regexp { return s.dharaCompiled }

// ChapterRegexp returns the compiled chapter pattern.
func (s *SectionMarkerPatterns) ChapterRegexp() *regexp.Regexp { return s.chapterCompiled }

// ScheduleRegexp returns the compiled schedule pattern.
func (s *SectionMarkerPatterns) ScheduleRegexp() *regexp.Regexp { return s.scheduleCompiled }

// NumeralDandaRegexp returns the compiled digit-run + danda pattern.
func (s *SectionMarkerPatterns) NumeralDandaRegexp() *regexp.Regexp { return s.numeralDandaCompiled }

// Profile is one complete grammar table set. A compiled Profile is
// read-only; detectors share it freely across goroutines.
type Profile struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`

	Citations []CitationRule `yaml:"citations" json:"citations"`

	PreambleMarkers  []string `yaml:"preamble_markers" json:"preamble_markers"`
	EnactmentMarkers []string `yaml:"enactment_markers" json:"enactment_markers"`

	SectionMarkers SectionMarkerPatterns `yaml:"section_markers" json:"section_markers"`

	// ClauseAlphabet is the fixed set of letters allowed inside
	// parenthesized clause markers.
	ClauseAlphabet string `yaml:"clause_alphabet" json:"clause_alphabet"`

	Relations    []RelationRule `yaml:"relations" json:"relations"`
	NegationCues []string       `yaml:"negation_cues" json:"negation_cues"`

	preambleCompiled  []*regexp.Regexp
	enactmentCompiled []*regexp.Regexp
	clauseCompiled    *regexp.Regexp
	compiled          bool
}

// Validate checks that the profile has all required tables. It does not
// compile regexes; Compile reports pattern syntax errors.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Version == "" {
		return fmt.Errorf("profile version is required")
	}
	if len(p.Citations) == 0 {
		return fmt.Errorf("at least one citation rule is required")
	}
	for i, rule := range p.Citations {
		if rule.ID == "" {
			return fmt.Errorf("citation rule %d: id is required", i)
		}
		if rule.Script != ScriptBengali && rule.Script != ScriptEnglish {
			return fmt.Errorf("citation rule %q: unknown script %q", rule.ID, rule.Script)
		}
		if rule.Pattern == "" {
			return fmt.Errorf("citation rule %q: pattern is required", rule.ID)
		}
		if _, ok := rule.Groups[GroupYear]; !ok {
			return fmt.Errorf("citation rule %q: %q group mapping is required", rule.ID, GroupYear)
		}
		if _, hasGroup := rule.Groups[GroupActType]; !hasGroup && rule.ActType == "" {
			return fmt.Errorf("citation rule %q: needs an act_type group or a fixed act_type", rule.ID)
		}
	}
	if len(p.PreambleMarkers) == 0 {
		return fmt.Errorf("at least one preamble marker is required")
	}
	if len(p.EnactmentMarkers) == 0 {
		return fmt.Errorf("at least one enactment marker is required")
	}
	if strings.TrimSpace(p.ClauseAlphabet) == "" {
		return fmt.Errorf("clause alphabet is required")
	}
	if len(p.Relations) == 0 {
		return fmt.Errorf("at least one relation rule is required")
	}
	for i, rel := range p.Relations {
		if rel.Relation == "" {
			return fmt.Errorf("relation rule %d: relation name is required", i)
		}
		if len(rel.Keywords) == 0 {
			return fmt.Errorf("relation rule %q: at least one keyword is required", rel.Relation)
		}
	}
	return nil
}

// Compile compiles every regex in the profile. Returns the first error so
// malformed tables surface at load time, not per call.
func (p *Profile) Compile() error {
	for i := range p.Citations {
		rule := &p.Citations[i]
		compiled, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("compiling citation rule %q: %w", rule.ID, err)
		}
		for groupName, groupIdx := range rule.Groups {
			if groupIdx < 1 || groupIdx > compiled.NumSubexp() {
				return fmt.Errorf("citation rule %q: group %q index %d out of range (pattern has %d groups)",
					rule.ID, groupName, groupIdx, compiled.NumSubexp())
			}
		}
		rule.compiled = compiled
	}

	p.preambleCompiled = p.preambleCompiled[:0]
	for i, marker := range p.PreambleMarkers {
		compiled, err := regexp.Compile(marker)
		if err != nil {
			return fmt.Errorf("compiling preamble marker %d: %w", i, err)
		}
		p.preambleCompiled = append(p.preambleCompiled, compiled)
	}

	p.enactmentCompiled = p.enactmentCompiled[:0]
	for i, marker := range p.EnactmentMarkers {
		compiled, err := regexp.Compile(marker)
		if err != nil {
			return fmt.Errorf("compiling enactment marker %d: %w", i, err)
		}
		p.enactmentCompiled = append(p.enactmentCompiled, compiled)
	}

	markerSpecs := []struct {
		name    string
		pattern string
		dst     **regexp.Regexp
	}{
		{"dhara", p.SectionMarkers.Dhara, &p.SectionMarkers.dharaCompiled},
		{"chapter", p.SectionMarkers.Chapter, &p.SectionMarkers.chapterCompiled},
		{"schedule", p.SectionMarkers.Schedule, &p.SectionMarkers.scheduleCompiled},
		{"numeral_danda", p.SectionMarkers.NumeralDanda, &p.SectionMarkers.numeralDandaCompiled},
	}
	for _, spec := range markerSpecs {
		if spec.pattern == "" {
			return fmt.Errorf("section marker %q pattern is required", spec.name)
		}
		compiled, err := regexp.Compile(spec.pattern)
		if err != nil {
			return fmt.Errorf("compiling section marker %q: %w", spec.name, err)
		}
		*spec.dst = compiled
	}

	clausePattern := fmt.Sprintf(`\(([%s])\)`, regexp.QuoteMeta(p.ClauseAlphabet))
	clauseCompiled, err := regexp.Compile(clausePattern)
	if err != nil {
		return fmt.Errorf("compiling clause pattern: %w", err)
	}
	p.clauseCompiled = clauseCompiled

	p.compiled = true
	return nil
}

// IsCompiled reports whether Compile has run successfully.
func (p *Profile) IsCompiled() bool { return p.compiled }

// PreambleRegexps returns the compiled preamble marker patterns.
func (p *Profile) PreambleRegexps() []*regexp.Regexp { return p.preambleCompiled }

// EnactmentRegexps returns the compiled enactment marker patterns.
func (p *Profile) EnactmentRegexps() []*regexp.Regexp { return p.enactmentCompiled }

// ClauseRegexp returns the compiled parenthesized clause-marker pattern.
func (p *Profile) ClauseRegexp() *regexp.Regexp { return p.clauseCompiled }
