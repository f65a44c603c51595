package citation

import (
	"strings"

	"github.com/coolbeans/ainlex/pkg/grammar"
)

// NegationInfo records whether a negation cue appears near a citation.
// Advisory only: it never inverts a classification, it just warns the
// consumer that the surrounding sentence may negate the relation.
type NegationInfo struct {
	Present bool   `json:"present"`
	Cue     string `json:"cue,omitempty"`
}

// DetectNegation scans the window for the profile's negation cues (e.g.
// "নয়", "not") and reports the first one found.
func (e *Extractor) DetectNegation(window string) NegationInfo {
	if window == "" {
		return NegationInfo{}
	}
	lower := strings.ToLower(window)
	for _, cue := range e.profile.NegationCues {
		if containsKeyword(window, lower, cue) {
			return NegationInfo{Present: true, Cue: cue}
		}
	}
	return NegationInfo{}
}

// ClassifyLexicalRelation inspects the keyword dictionary in priority order
// (amendment, repeal, substitution, dependency, incorporation in the
// default profile) and returns the first relation with a keyword in the
// window, or "mention" when none match. The negation info is advisory
// context for the caller and does not affect the result.
func (e *Extractor) ClassifyLexicalRelation(window string, _ NegationInfo) string {
	if window == "" {
		return grammar.RelationMention
	}
	lower := strings.ToLower(window)
	for _, rule := range e.profile.Relations {
		for _, keyword := range rule.Keywords {
			if containsKeyword(window, lower, keyword) {
				return rule.Relation
			}
		}
	}
	return grammar.RelationMention
}

// containsKeyword matches ASCII keywords case-insensitively on word
// boundaries; non-ASCII (Bengali) keywords match as verbatim substrings,
// since ASCII word boundaries are meaningless between Bengali codepoints.
func containsKeyword(window, lowerWindow, keyword string) bool {
	if !isASCII(keyword) {
		return strings.Contains(window, keyword)
	}

	kw := strings.ToLower(keyword)
	from := 0
	for {
		i := strings.Index(lowerWindow[from:], kw)
		if i < 0 {
			return false
		}
		i += from
		if wordBoundary(lowerWindow, i, i+len(kw)) {
			return true
		}
		from = i + 1
	}
}

func wordBoundary(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
