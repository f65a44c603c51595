package citation

import (
	"sort"
	"strings"

	"github.com/coolbeans/ainlex/pkg/content"
	"github.com/coolbeans/ainlex/pkg/grammar"
)

// contextWindowSize bounds the context captured on each side of a citation.
const contextWindowSize = 60

// Extractor recognizes citation grammars across scripts. It holds only a
// compiled, read-only grammar profile, so one Extractor is safe for
// concurrent use and repeated calls never share state between documents.
type Extractor struct {
	profile *grammar.Profile
}

// New creates an Extractor over the default grammar profile.
func New() *Extractor {
	return &Extractor{profile: grammar.Default()}
}

// NewWithProfile creates an Extractor over an injected, compiled profile.
func NewWithProfile(profile *grammar.Profile) *Extractor {
	return &Extractor{profile: profile}
}

// candidate pairs a citation with its matching rule's priority for
// deterministic ordering and overlap resolution.
type candidate struct {
	citation Citation
	rule     int
}

// Extract returns every citation in text, ordered by position (rule
// priority as tiebreak). Results are recomputed on every call; repeated
// calls on identical input are byte-for-byte reproducible including
// ordering. Blank input yields an empty list.
func (e *Extractor) Extract(text string) []Citation {
	citations := []Citation{}
	if strings.TrimSpace(text) == "" {
		return citations
	}

	var candidates []candidate
	for ruleIdx := range e.profile.Citations {
		rule := &e.profile.Citations[ruleIdx]
		for _, m := range rule.Regexp().FindAllStringSubmatchIndex(text, -1) {
			candidates = append(candidates, candidate{
				citation: e.buildCitation(text, rule, m),
				rule:     ruleIdx,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].citation.Position != candidates[j].citation.Position {
			return candidates[i].citation.Position < candidates[j].citation.Position
		}
		return candidates[i].rule < candidates[j].rule
	})

	for _, cand := range dedupeOverlaps(candidates) {
		citations = append(citations, cand.citation)
	}
	return citations
}

// buildCitation assembles one Citation from a submatch index vector. The
// verbatim matched substring and its offsets come straight from the match
// indexes, which is what guarantees the round-trip invariant.
func (e *Extractor) buildCitation(text string, rule *grammar.CitationRule, m []int) Citation {
	group := func(name string) string {
		idx, ok := rule.Groups[name]
		if !ok {
			return ""
		}
		lo, hi := m[2*idx], m[2*idx+1]
		if lo < 0 {
			return ""
		}
		return text[lo:hi]
	}

	actType := group(grammar.GroupActType)
	if actType == "" {
		actType = rule.ActType
	}

	before, after := content.Window(text, m[0], m[1], contextWindowSize)
	citationText := text[m[0]:m[1]]

	negation := e.DetectNegation(before + citationText + after)
	relation := e.ClassifyLexicalRelation(before+citationText+after, negation)

	return Citation{
		PatternType:     rule.ID,
		Script:          rule.Script,
		CitationYear:    group(grammar.GroupYear),
		CitationSerial:  group(grammar.GroupSerial),
		ActType:         actType,
		Position:        m[0],
		CitationText:    citationText,
		LineNumber:      content.LineNumber(text, m[0]),
		ContextBefore:   before,
		ContextAfter:    after,
		LexicalRelation: relation,
		NegationPresent: negation.Present,
	}
}

// dedupeOverlaps drops candidates whose span overlaps an already accepted
// one. Candidates arrive sorted by position then rule priority, so the
// earlier, higher-priority match wins.
func dedupeOverlaps(candidates []candidate) []candidate {
	if len(candidates) == 0 {
		return candidates
	}
	accepted := make([]candidate, 0, len(candidates))
	for _, cand := range candidates {
		overlapping := false
		for i := range accepted {
			if spansOverlap(&accepted[i].citation, &cand.citation) {
				overlapping = true
				break
			}
		}
		if !overlapping {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

func spansOverlap(a, b *Citation) bool {
	return a.Position < b.End() && b.Position < a.End()
}
