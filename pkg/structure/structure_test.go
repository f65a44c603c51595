package structure

import (
	"strings"
	"testing"
)

const sampleContent = "প্রথম অধ্যায়\n" +
	"১৷ সংক্ষিপ্ত শিরোনাম৷ এই আইন কোম্পানী আইন নামে অভিহিত হইবে৷\n" +
	"২৷ সংজ্ঞা৷ বিষয় বা প্রসঙ্গের পরিপন্থী কিছু না থাকিলে—\n" +
	"(ক) আদালত অর্থ কোম্পানী সংক্রান্ত আদালত;\n" +
	"(খ) নিবন্ধক অর্থ নিবন্ধন কর্মকর্তা;\n" +
	"৩৷ প্রয়োগ৷ এই আইন সমগ্র দেশে প্রযোজ্য হইবে৷\n"

func sectionBody(t *testing.T, number string) string {
	t.Helper()
	start := strings.Index(sampleContent, number+"৷")
	if start < 0 {
		t.Fatalf("section %s not in sample content", number)
	}
	end := strings.Index(sampleContent[start:], "\n")
	return sampleContent[start : start+end]
}

func TestBuildLocatesSections(t *testing.T) {
	body1 := sectionBody(t, "১")
	body3 := sectionBody(t, "৩")
	body2 := sampleContent[strings.Index(sampleContent, "২৷"):strings.Index(sampleContent, "৩৷")]

	tree := Build(Skeleton{
		ContentRaw: sampleContent,
		Sections: []SectionInput{
			{Number: "১", BodyText: body1},
			{Number: "২", BodyText: body2},
			{Number: "৩", BodyText: body3},
		},
	})

	if !tree.Valid() {
		t.Fatalf("unexpected defects: %+v", tree.Sections)
	}
	if tree.ContentLength != len(sampleContent) {
		t.Errorf("content_length: got %d, want %d", tree.ContentLength, len(sampleContent))
	}
	if len(tree.Sections) != 3 {
		t.Fatalf("section count: got %d, want 3", len(tree.Sections))
	}

	for i, want := range []string{"১৷", "২৷", "৩৷"} {
		section := tree.Sections[i]
		if got := strings.Index(sampleContent, want); section.ContentStart != got {
			t.Errorf("section %d content_start: got %d, want %d", i, section.ContentStart, got)
		}
	}

	// Each section ends where the next begins; the last runs to the end.
	if tree.Sections[0].ContentEnd != tree.Sections[1].ContentStart {
		t.Errorf("section 1 content_end: got %d, want %d",
			tree.Sections[0].ContentEnd, tree.Sections[1].ContentStart)
	}
	if tree.Sections[1].ContentEnd != tree.Sections[2].ContentStart {
		t.Errorf("section 2 content_end: got %d, want %d",
			tree.Sections[1].ContentEnd, tree.Sections[2].ContentStart)
	}
	if tree.Sections[2].ContentEnd != len(sampleContent) {
		t.Errorf("last section content_end: got %d, want %d",
			tree.Sections[2].ContentEnd, len(sampleContent))
	}
}

func TestBuildClauseOffsets(t *testing.T) {
	body2 := sampleContent[strings.Index(sampleContent, "২৷"):strings.Index(sampleContent, "৩৷")]
	relKa := strings.Index(body2, "(ক)")
	relKha := strings.Index(body2, "(খ)")

	tree := Build(Skeleton{
		ContentRaw: sampleContent,
		Sections: []SectionInput{
			{Number: "২", BodyText: body2, Clauses: []ClauseInput{
				{Marker: "(ক)", RelativeOffset: relKa},
				{Marker: "(খ)", RelativeOffset: relKha},
			}},
		},
	})

	if !tree.Valid() {
		t.Fatalf("unexpected defects: %+v", tree.Sections)
	}
	clauses := tree.Sections[0].Clauses
	if len(clauses) != 2 {
		t.Fatalf("clause count: got %d, want 2", len(clauses))
	}
	for i, want := range []string{"(ক)", "(খ)"} {
		abs := clauses[i].MarkerOffset
		if got := sampleContent[abs : abs+len(want)]; got != want {
			t.Errorf("clause %d: content at marker_offset %d is %q, want %q", i, abs, got, want)
		}
	}
}

func TestBuildSubsectionClausesUseSubsectionBase(t *testing.T) {
	content := "1. Section one body\n(1) first subsection (a) alpha (b) beta\n(2) second subsection\n"
	body := strings.TrimSuffix(content, "\n")
	sub1 := strings.Index(content, "(1)")
	sub2 := strings.Index(content, "(2)")
	relA := strings.Index(content, "(a)") - sub1
	relB := strings.Index(content, "(b)") - sub1

	tree := Build(Skeleton{
		ContentRaw: content,
		Sections: []SectionInput{
			{Number: "1", BodyText: body, Subsections: []SubsectionInput{
				{Marker: "(1)", RelativeOffset: sub1, Clauses: []ClauseInput{
					{Marker: "(a)", RelativeOffset: relA},
					{Marker: "(b)", RelativeOffset: relB},
				}},
				{Marker: "(2)", RelativeOffset: sub2},
			}},
		},
	})

	if !tree.Valid() {
		t.Fatalf("unexpected defects: %+v", tree.Sections)
	}
	section := tree.Sections[0]
	if len(section.Subsections) != 2 {
		t.Fatalf("subsection count: got %d, want 2", len(section.Subsections))
	}
	if got := section.Subsections[0].MarkerOffset; got != sub1 {
		t.Errorf("subsection (1) marker_offset: got %d, want %d", got, sub1)
	}

	// Clause offsets resolve against the subsection marker, not the
	// section start.
	for i, marker := range []string{"(a)", "(b)"} {
		abs := section.Subsections[0].Clauses[i].MarkerOffset
		if got := content[abs : abs+len(marker)]; got != marker {
			t.Errorf("clause %s: content at %d is %q", marker, abs, got)
		}
	}
}

func TestBuildFlagsUnlocatableSection(t *testing.T) {
	tree := Build(Skeleton{
		ContentRaw: sampleContent,
		Sections: []SectionInput{
			{Number: "১", BodyText: sectionBody(t, "১")},
			{Number: "৯৯", BodyText: "এই ধারা মূল পাঠে নাই", Clauses: []ClauseInput{
				{Marker: "(ক)", RelativeOffset: 5},
			}},
			{Number: "৩", BodyText: sectionBody(t, "৩")},
		},
	})

	if len(tree.Sections) != 3 {
		t.Fatalf("all sections must be preserved: got %d", len(tree.Sections))
	}

	missing := tree.Sections[1]
	if missing.ContentStart != -1 {
		t.Errorf("unlocatable section content_start: got %d, want -1", missing.ContentStart)
	}
	if len(missing.Defects) == 0 {
		t.Error("unlocatable section carries no defect")
	}
	if len(missing.Clauses) != 1 || missing.Clauses[0].MarkerOffset != -1 {
		t.Errorf("clauses under unlocatable section: %+v", missing.Clauses)
	}
	if len(missing.Clauses[0].Defects) == 0 {
		t.Error("clause under unlocatable section carries no defect")
	}

	// The siblings still resolve cleanly. Section ১ ends at section ৩'s
	// start because the unlocatable section contributes no boundary.
	if len(tree.Sections[0].Defects) != 0 || len(tree.Sections[2].Defects) != 0 {
		t.Errorf("sibling sections flagged: %+v / %+v",
			tree.Sections[0].Defects, tree.Sections[2].Defects)
	}
	if tree.Sections[0].ContentEnd != tree.Sections[2].ContentStart {
		t.Errorf("section ১ content_end: got %d, want %d",
			tree.Sections[0].ContentEnd, tree.Sections[2].ContentStart)
	}
	if tree.Valid() {
		t.Error("tree with defects reported valid")
	}
}

func TestBuildFlagsOutOfBoundsClause(t *testing.T) {
	body1 := sectionBody(t, "১")

	tree := Build(Skeleton{
		ContentRaw: sampleContent,
		Sections: []SectionInput{
			{Number: "১", BodyText: body1, Clauses: []ClauseInput{
				{Marker: "(ক)", RelativeOffset: len(sampleContent) * 2},
			}},
			{Number: "৩", BodyText: sectionBody(t, "৩")},
		},
	})

	clause := tree.Sections[0].Clauses[0]
	if len(clause.Defects) == 0 {
		t.Fatal("out-of-bounds clause not flagged")
	}
	// Flagged, not dropped: the node stays in the tree with its computed
	// offset.
	if clause.Marker != "(ক)" {
		t.Errorf("clause marker: got %q", clause.Marker)
	}
	if tree.DefectCount() != 1 {
		t.Errorf("defect count: got %d, want 1", tree.DefectCount())
	}
}

func TestBuildFlagsNonAscendingMarkers(t *testing.T) {
	content := "1. body text here (a) first (b) second\n"
	body := strings.TrimSuffix(content, "\n")
	relA := strings.Index(content, "(a)")
	relB := strings.Index(content, "(b)")

	tree := Build(Skeleton{
		ContentRaw: content,
		Sections: []SectionInput{
			{Number: "1", BodyText: body, Clauses: []ClauseInput{
				{Marker: "(b)", RelativeOffset: relB},
				{Marker: "(a)", RelativeOffset: relA},
			}},
		},
	})

	clauses := tree.Sections[0].Clauses
	if len(clauses) != 2 {
		t.Fatalf("clause count: got %d, want 2", len(clauses))
	}
	if len(clauses[0].Defects) != 0 {
		t.Errorf("first clause flagged: %+v", clauses[0].Defects)
	}
	if len(clauses[1].Defects) == 0 {
		t.Error("non-ascending clause not flagged")
	}
}

func TestBuildFlagsOutOfOrderSections(t *testing.T) {
	tree := Build(Skeleton{
		ContentRaw: sampleContent,
		Sections: []SectionInput{
			{Number: "৩", BodyText: sectionBody(t, "৩")},
			{Number: "১", BodyText: sectionBody(t, "১")},
		},
	})

	if len(tree.Sections[1].Defects) == 0 {
		t.Error("out-of-order section not flagged")
	}
	// Both sections remain with their located offsets.
	if tree.Sections[0].ContentStart < 0 || tree.Sections[1].ContentStart < 0 {
		t.Errorf("sections dropped: %+v", tree.Sections)
	}
}

func TestBuildFlagsDuplicateBodyText(t *testing.T) {
	body := sectionBody(t, "২")

	tree := Build(Skeleton{
		ContentRaw: sampleContent,
		Sections: []SectionInput{
			{Number: "২", BodyText: body},
			{Number: "২ক", BodyText: body},
		},
	})

	// Both locate at the same offset: the first collapses to a zero-width
	// span and the second fails to advance. Each carries its own defect.
	first, second := tree.Sections[0], tree.Sections[1]
	if first.ContentStart != second.ContentStart {
		t.Fatalf("expected identical starts, got %d and %d",
			first.ContentStart, second.ContentStart)
	}
	if first.ContentEnd != first.ContentStart {
		t.Errorf("first section span: got [%d, %d), want zero-width",
			first.ContentStart, first.ContentEnd)
	}
	if len(first.Defects) == 0 {
		t.Error("zero-width section not flagged")
	}
	if len(second.Defects) == 0 {
		t.Error("non-advancing section not flagged")
	}
	if tree.Valid() {
		t.Error("tree with duplicate-start sections reported valid")
	}
}

func TestBuildEmptySkeleton(t *testing.T) {
	tree := Build(Skeleton{ContentRaw: sampleContent})
	if len(tree.Sections) != 0 {
		t.Errorf("sections: got %d, want 0", len(tree.Sections))
	}
	if !tree.Valid() {
		t.Error("empty tree reported invalid")
	}
	if tree.ContentLength != len(sampleContent) {
		t.Errorf("content_length: got %d, want %d", tree.ContentLength, len(sampleContent))
	}
}

func TestBuildCarriesDocumentSignals(t *testing.T) {
	source := &ExtractionResult{
		Content:            sampleContent,
		ExtractionMethod:   "css_selector",
		SuccessfulSelector: "div.act-content",
		HasLegalSignal:     true,
	}
	tree := Build(Skeleton{ContentRaw: sampleContent, Source: source})
	if tree.Source != source {
		t.Error("source provenance not carried through")
	}
}
