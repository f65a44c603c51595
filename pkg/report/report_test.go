package report

import (
	"strings"
	"testing"

	"github.com/coolbeans/ainlex/pkg/grammar"
	"github.com/coolbeans/ainlex/pkg/structure"
)

const sampleAct = "যেহেতু আইন প্রণয়ন সমীচীন ও প্রয়োজনীয়;\n" +
	"সেহেতু এতদ্বারা আইন করা হইল:—\n" +
	"১৷ এই আইন ১৯৮৪ সনের ৩৬ নং আইন দ্বারা সংশোধিত হইয়াছে৷\n" +
	"২৷ সংজ্ঞা—\n" +
	"(ক) আদালত;\n" +
	"(খ) নিবন্ধক;\n"

func TestAnalyze(t *testing.T) {
	r := Analyze(sampleAct, nil)

	if r.Content.Raw != sampleAct {
		t.Error("content_raw not preserved verbatim")
	}
	if !r.Preamble.Detected {
		t.Error("preamble not detected")
	}
	if !r.Enactment.Detected {
		t.Error("enactment clause not detected")
	}
	if len(r.Clauses) != 2 {
		t.Errorf("clause count: got %d, want 2", len(r.Clauses))
	}
	if r.References.Count != 1 {
		t.Fatalf("citation count: got %d, want 1", r.References.Count)
	}
	if got := r.References.Citations[0].CitationYear; got != "১৯৮৪" {
		t.Errorf("citation_year: got %q", got)
	}
	if r.References.Disclaimer == "" || r.References.RelationshipInference != "explicitly_prohibited" {
		t.Errorf("reference metadata contract violated: %+v", r.References)
	}

	stats := r.Statistics
	if want := strings.Count(sampleAct, "\n") + 1; stats.Lines != want {
		t.Errorf("lines: got %d, want %d", stats.Lines, want)
	}
	if stats.ClauseCount != 2 || stats.CitationCount != 1 {
		t.Errorf("counts: clauses %d, citations %d", stats.ClauseCount, stats.CitationCount)
	}
	if stats.SectionMarkers.NumeralDandaCount != 2 {
		t.Errorf("numeral danda count: got %d, want 2", stats.SectionMarkers.NumeralDandaCount)
	}
	if stats.CitationsByScript[string(grammar.ScriptBengali)] != 1 {
		t.Errorf("citations_by_script: %v", stats.CitationsByScript)
	}
	if stats.CitationsByPattern[grammar.RuleBengaliShortForm] != 1 {
		t.Errorf("citations_by_pattern: %v", stats.CitationsByPattern)
	}
	if stats.StructuralDefects != 0 {
		t.Errorf("structural_defects before AttachTree: got %d", stats.StructuralDefects)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	r := Analyze("", nil)
	if r.Preamble.Detected || r.Enactment.Detected {
		t.Error("signals detected in empty input")
	}
	if r.References.Count != 0 || r.References.Citations == nil {
		t.Errorf("references: %+v", r.References)
	}
	if r.Statistics.CitationCount != 0 || r.Statistics.ClauseCount != 0 {
		t.Errorf("statistics: %+v", r.Statistics)
	}
}

func TestAttachTree(t *testing.T) {
	r := Analyze(sampleAct, nil)

	tree := structure.Build(structure.Skeleton{
		ContentRaw: sampleAct,
		Sections: []structure.SectionInput{
			{Number: "৯৯", BodyText: "এই ধারা মূল পাঠে নাই"},
		},
	})
	r.AttachTree(tree)

	if r.Tree != tree {
		t.Error("tree not attached")
	}
	if r.Statistics.StructuralDefects != tree.DefectCount() {
		t.Errorf("structural_defects: got %d, want %d",
			r.Statistics.StructuralDefects, tree.DefectCount())
	}
	if r.Statistics.StructuralDefects == 0 {
		t.Error("expected at least one defect from the unlocatable section")
	}
}
