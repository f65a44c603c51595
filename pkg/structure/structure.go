// Package structure builds the nested, bounds-verified section tree for a
// statute from a caller-supplied skeleton and the raw content text. All
// offsets are byte offsets into the raw text. Offset violations are flagged
// as structural defects on the specific node; one malformed section never
// aborts the rest of the document.
package structure

import "github.com/coolbeans/ainlex/pkg/marker"

// ExtractionResult is the Content Locator collaborator's handoff record.
// The builder carries it as provenance and never interprets it.
type ExtractionResult struct {
	Content            string   `json:"content"`
	ExtractionMethod   string   `json:"extraction_method"`
	SuccessfulSelector string   `json:"successful_selector,omitempty"`
	SelectorsAttempted []string `json:"selectors_attempted,omitempty"`
	HasLegalSignal     bool     `json:"has_legal_signal"`
}

// ClauseInput is one clause marker with its offset relative to the
// enclosing slice (the section body, or the subsection marker for clauses
// nested under a subsection).
type ClauseInput struct {
	Marker         string `json:"marker"`
	RelativeOffset int    `json:"relative_offset"`
}

// SubsectionInput is one subsection marker, offset relative to the section
// body, with the clauses nested under it.
type SubsectionInput struct {
	Marker         string        `json:"marker"`
	RelativeOffset int           `json:"relative_offset"`
	Clauses        []ClauseInput `json:"clauses,omitempty"`
}

// SectionInput is one section of the skeleton: its body text slice plus the
// relative offsets the marker detectors computed against that slice.
type SectionInput struct {
	Number      string            `json:"number"`
	Heading     string            `json:"heading,omitempty"`
	BodyText    string            `json:"body_text"`
	Subsections []SubsectionInput `json:"subsections,omitempty"`
	Clauses     []ClauseInput     `json:"clauses,omitempty"`
}

// Skeleton is the builder input: the section skeleton assembled upstream,
// the raw content it was cut from, and the document-level detections.
type Skeleton struct {
	Sections   []SectionInput       `json:"sections"`
	ContentRaw string               `json:"content_raw"`
	Preamble   *marker.ClauseSignal `json:"preamble,omitempty"`
	Enactment  *marker.ClauseSignal `json:"enactment,omitempty"`
	Source     *ExtractionResult    `json:"source,omitempty"`
}

// Clause is a built clause node. MarkerOffset is absolute; -1 when the
// enclosing section could not be located.
type Clause struct {
	Marker       string   `json:"marker"`
	MarkerOffset int      `json:"marker_offset"`
	Defects      []string `json:"defects,omitempty"`
}

// Subsection is a built subsection node.
type Subsection struct {
	Marker       string   `json:"marker"`
	MarkerOffset int      `json:"marker_offset"`
	Clauses      []Clause `json:"clauses,omitempty"`
	Defects      []string `json:"defects,omitempty"`
}

// Section is a built section node. ContentStart/ContentEnd bound the
// section's slice of the raw text; ContentEnd equals the next section's
// ContentStart, or the content length for the last section.
type Section struct {
	Number       string       `json:"number"`
	Heading      string       `json:"heading,omitempty"`
	ContentStart int          `json:"content_start"`
	ContentEnd   int          `json:"content_end"`
	Subsections  []Subsection `json:"subsections,omitempty"`
	Clauses      []Clause     `json:"clauses,omitempty"`
	Defects      []string     `json:"defects,omitempty"`
}

// Tree is the built structure tree. It is constructed once per document
// and not mutated afterward.
type Tree struct {
	Sections      []Section            `json:"sections"`
	Preamble      *marker.ClauseSignal `json:"preamble,omitempty"`
	Enactment     *marker.ClauseSignal `json:"enactment,omitempty"`
	Source        *ExtractionResult    `json:"source,omitempty"`
	ContentLength int                  `json:"content_length"`
}

// DefectCount returns the total number of structural defects flagged
// anywhere in the tree.
func (t *Tree) DefectCount() int {
	count := 0
	for i := range t.Sections {
		section := &t.Sections[i]
		count += len(section.Defects)
		for j := range section.Subsections {
			count += len(section.Subsections[j].Defects)
			for k := range section.Subsections[j].Clauses {
				count += len(section.Subsections[j].Clauses[k].Defects)
			}
		}
		for j := range section.Clauses {
			count += len(section.Clauses[j].Defects)
		}
	}
	return count
}

// Valid reports whether the tree carries no structural defects.
func (t *Tree) Valid() bool { return t.DefectCount() == 0 }
