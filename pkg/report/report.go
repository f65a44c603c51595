// Package report composes the detector outputs for one document into a
// single export-ready record. Everything is recomputed on each call;
// nothing is cached between documents.
package report

import (
	"github.com/coolbeans/ainlex/pkg/citation"
	"github.com/coolbeans/ainlex/pkg/content"
	"github.com/coolbeans/ainlex/pkg/grammar"
	"github.com/coolbeans/ainlex/pkg/marker"
	"github.com/coolbeans/ainlex/pkg/structure"
)

// Statistics summarizes an analysis for reporting layers.
type Statistics struct {
	Lines              int                        `json:"lines"`
	SectionMarkers     marker.SectionMarkerCounts `json:"section_markers"`
	ClauseCount        int                        `json:"clause_count"`
	CitationCount      int                        `json:"citation_count"`
	CitationsByScript  map[string]int             `json:"citations_by_script"`
	CitationsByPattern map[string]int             `json:"citations_by_pattern"`
	StructuralDefects  int                        `json:"structural_defects"`
}

// Report is the full analysis of one document.
type Report struct {
	Content    content.Record        `json:"content"`
	Preamble   marker.ClauseSignal   `json:"preamble"`
	Enactment  marker.ClauseSignal   `json:"enactment"`
	Clauses    []marker.ClauseMarker `json:"clauses"`
	References citation.Metadata     `json:"references"`
	Tree       *structure.Tree       `json:"tree,omitempty"`
	Statistics Statistics            `json:"statistics"`
}

// Analyze runs every detector over text with the given grammar profile
// (the default profile when nil) and composes the results.
func Analyze(text string, profile *grammar.Profile) *Report {
	if profile == nil {
		profile = grammar.Default()
	}
	detector := marker.NewDetectorWithProfile(profile)
	extractor := citation.NewWithProfile(profile)

	record := content.NewRecord(text, nil)
	clauses := detector.DetectClauses(text)
	citations := extractor.Extract(text)
	counts := detector.CountSectionMarkers(text)

	byScript := make(map[string]int)
	byPattern := make(map[string]int)
	for i := range citations {
		byScript[string(citations[i].Script)]++
		byPattern[citations[i].PatternType]++
	}

	return &Report{
		Content:    record,
		Preamble:   detector.DetectPreamble(text),
		Enactment:  detector.DetectEnactmentClause(text),
		Clauses:    clauses,
		References: citation.ReferencesMetadata(citations),
		Statistics: Statistics{
			Lines:              content.LineNumber(text, len(text)),
			SectionMarkers:     counts,
			ClauseCount:        len(clauses),
			CitationCount:      len(citations),
			CitationsByScript:  byScript,
			CitationsByPattern: byPattern,
		},
	}
}

// AttachTree adds a built structure tree to the report and folds its defect
// count into the statistics. The tree itself is not modified.
func (r *Report) AttachTree(tree *structure.Tree) {
	r.Tree = tree
	if tree != nil {
		r.Statistics.StructuralDefects = tree.DefectCount()
	}
}
