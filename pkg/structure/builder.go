package structure

import (
	"fmt"

	"github.com/coolbeans/ainlex/pkg/content"
)

// Build composes the skeleton with the raw content into a bounds-verified
// tree. Sections are processed independently with no cross-section state:
// each body text is located from the start of the document through the
// offset index, section ends are derived from the following section's
// start, and every nested offset is converted to an absolute marker offset
// and validated against its parent's bounds. Violations are flagged on the
// offending node; sibling nodes are always preserved.
func Build(skeleton Skeleton) *Tree {
	tree := &Tree{
		Sections:      make([]Section, 0, len(skeleton.Sections)),
		Preamble:      skeleton.Preamble,
		Enactment:     skeleton.Enactment,
		Source:        skeleton.Source,
		ContentLength: len(skeleton.ContentRaw),
	}

	for _, input := range skeleton.Sections {
		section := Section{
			Number:       input.Number,
			Heading:      input.Heading,
			ContentStart: content.LocateOffset(input.BodyText, skeleton.ContentRaw, 0),
			ContentEnd:   -1,
		}
		if section.ContentStart < 0 {
			section.Defects = append(section.Defects,
				fmt.Sprintf("section %s: body text not found in content", input.Number))
		}
		tree.Sections = append(tree.Sections, section)
	}

	// Section ends: the next locatable section's start, or the content
	// length for the last one.
	lastStart := -1
	for i := range tree.Sections {
		section := &tree.Sections[i]
		if section.ContentStart < 0 {
			continue
		}
		if section.ContentStart <= lastStart {
			section.Defects = append(section.Defects,
				fmt.Sprintf("section %s: content_start %d does not advance past the previous section",
					section.Number, section.ContentStart))
		}
		lastStart = section.ContentStart

		section.ContentEnd = len(skeleton.ContentRaw)
		for j := i + 1; j < len(tree.Sections); j++ {
			if tree.Sections[j].ContentStart >= 0 {
				section.ContentEnd = tree.Sections[j].ContentStart
				break
			}
		}
		if section.ContentEnd < section.ContentStart {
			section.Defects = append(section.Defects,
				fmt.Sprintf("section %s: content_end %d precedes content_start %d",
					section.Number, section.ContentEnd, section.ContentStart))
		} else if section.ContentEnd == section.ContentStart {
			section.Defects = append(section.Defects,
				fmt.Sprintf("section %s: zero-width span at %d",
					section.Number, section.ContentStart))
		}
	}

	for i := range tree.Sections {
		buildChildren(&tree.Sections[i], &skeleton.Sections[i])
	}

	return tree
}

// buildChildren converts the section's nested relative offsets to absolute
// marker offsets and validates them against the parent bounds.
func buildChildren(section *Section, input *SectionInput) {
	located := section.ContentStart >= 0 && section.ContentEnd >= section.ContentStart

	prevOffset := -1
	for _, subInput := range input.Subsections {
		subsection := Subsection{
			Marker:       subInput.Marker,
			MarkerOffset: -1,
		}
		if located {
			subsection.MarkerOffset = section.ContentStart + subInput.RelativeOffset
			if subsection.MarkerOffset < section.ContentStart || subsection.MarkerOffset >= section.ContentEnd {
				subsection.Defects = append(subsection.Defects,
					fmt.Sprintf("subsection %s: marker_offset %d outside section bounds [%d, %d)",
						subInput.Marker, subsection.MarkerOffset, section.ContentStart, section.ContentEnd))
			}
			if subsection.MarkerOffset <= prevOffset {
				subsection.Defects = append(subsection.Defects,
					fmt.Sprintf("subsection %s: marker_offset %d not ascending",
						subInput.Marker, subsection.MarkerOffset))
			}
			prevOffset = subsection.MarkerOffset
		} else {
			subsection.Defects = append(subsection.Defects,
				fmt.Sprintf("subsection %s: offset unresolved, section not located", subInput.Marker))
		}

		subsection.Clauses = buildClauses(subInput.Clauses, subsection.MarkerOffset,
			subsection.MarkerOffset, section.ContentEnd, located && len(subsection.Defects) == 0)
		section.Subsections = append(section.Subsections, subsection)
	}

	section.Clauses = buildClauses(input.Clauses, section.ContentStart,
		section.ContentStart, section.ContentEnd, located)
}

// buildClauses converts clause offsets against a base (the subsection's own
// marker offset, or the section's content start) and checks each against
// [lower, upper).
func buildClauses(inputs []ClauseInput, base, lower, upper int, resolved bool) []Clause {
	if len(inputs) == 0 {
		return nil
	}
	clauses := make([]Clause, 0, len(inputs))
	prevOffset := -1
	for _, input := range inputs {
		clause := Clause{Marker: input.Marker, MarkerOffset: -1}
		if resolved {
			clause.MarkerOffset = base + input.RelativeOffset
			if clause.MarkerOffset < lower || clause.MarkerOffset >= upper {
				clause.Defects = append(clause.Defects,
					fmt.Sprintf("clause %s: marker_offset %d outside parent bounds [%d, %d)",
						input.Marker, clause.MarkerOffset, lower, upper))
			}
			if clause.MarkerOffset <= prevOffset {
				clause.Defects = append(clause.Defects,
					fmt.Sprintf("clause %s: marker_offset %d not ascending",
						input.Marker, clause.MarkerOffset))
			}
			prevOffset = clause.MarkerOffset
		} else {
			clause.Defects = append(clause.Defects,
				fmt.Sprintf("clause %s: offset unresolved, parent not located", input.Marker))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
