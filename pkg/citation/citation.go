// Package citation extracts statute citations from bilingual
// (Bengali/English) legal text and classifies the lexical relation each one
// appears in. Extraction is advisory pattern matching: the package never
// asserts legal force, validity, or an adjudicated relationship between the
// citing and cited instruments.
package citation

import "github.com/coolbeans/ainlex/pkg/grammar"

// Citation is one detected citation. It is an independent value: mutating
// a returned Citation never affects the source text or other citations.
//
// Position is a byte offset into the exact text argument passed to
// Extract, and the round-trip invariant holds unconditionally:
//
//	text[Position : Position+len(CitationText)] == CitationText
//
// Year and serial are preserved verbatim in their original digit script.
type Citation struct {
	PatternType     string         `json:"pattern_type"`
	Script          grammar.Script `json:"script"`
	CitationYear    string         `json:"citation_year"`
	CitationSerial  string         `json:"citation_serial"`
	ActType         string         `json:"act_type"`
	Position        int            `json:"position"`
	CitationText    string         `json:"citation_text"`
	LineNumber      int            `json:"line_number"`
	ContextBefore   string         `json:"context_before"`
	ContextAfter    string         `json:"context_after"`
	LexicalRelation string         `json:"lexical_relation_type"`
	NegationPresent bool           `json:"negation_present"`
}

// End returns the byte offset just past the citation text.
func (c *Citation) End() int {
	return c.Position + len(c.CitationText)
}

// Disclaimer is the fixed advisory statement attached to every reference
// metadata record.
const Disclaimer = "Detected via pattern matching. No legal force or applicability implied."

// RelationshipInference is the fixed policy tag: the engine never infers
// legal relationships between instruments.
const RelationshipInference = "explicitly_prohibited"

// Metadata wraps a citation list for export and reporting layers.
type Metadata struct {
	Count                 int        `json:"count"`
	Citations             []Citation `json:"citations"`
	Disclaimer            string     `json:"disclaimer"`
	RelationshipInference string     `json:"relationship_inference"`
}

// ReferencesMetadata wraps citations with the fixed disclaimer contract.
// Nil or empty input yields the same shape with a zero count and an empty,
// non-nil list.
func ReferencesMetadata(citations []Citation) Metadata {
	if citations == nil {
		citations = []Citation{}
	}
	return Metadata{
		Count:                 len(citations),
		Citations:             citations,
		Disclaimer:            Disclaimer,
		RelationshipInference: RelationshipInference,
	}
}
