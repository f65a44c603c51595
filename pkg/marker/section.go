package marker

// SectionMarkerCounts holds the independent section-marker counters for one
// text. BengaliNumberedSections is the sum of the dhara and numeral+danda
// counts.
type SectionMarkerCounts struct {
	DharaCount              int `json:"dhara_count"`
	NumeralDandaCount       int `json:"numeral_danda_count"`
	ChapterCount            int `json:"chapter_count"`
	ScheduleCount           int `json:"schedule_count"`
	BengaliNumberedSections int `json:"bengali_numbered_sections"`
}

// CountSectionMarkers counts occurrences of "ধারা", Bengali digit runs
// immediately followed by a danda glyph, "অধ্যায়" and "তফসিল". The
// numeral+danda counter does not require "ধারা" to appear anywhere. Empty
// text yields all-zero counts.
func (d *Detector) CountSectionMarkers(text string) SectionMarkerCounts {
	var counts SectionMarkerCounts
	if text == "" {
		return counts
	}

	markers := &d.profile.SectionMarkers
	counts.DharaCount = len(markers.DharaRegexp().FindAllStringIndex(text, -1))
	counts.NumeralDandaCount = len(markers.NumeralDandaRegexp().FindAllStringIndex(text, -1))
	counts.ChapterCount = len(markers.ChapterRegexp().FindAllStringIndex(text, -1))
	counts.ScheduleCount = len(markers.ScheduleRegexp().FindAllStringIndex(text, -1))
	counts.BengaliNumberedSections = counts.DharaCount + counts.NumeralDandaCount
	return counts
}

// CountSectionMarkers runs the default detector.
func CountSectionMarkers(text string) SectionMarkerCounts {
	return defaultDetector.CountSectionMarkers(text)
}
