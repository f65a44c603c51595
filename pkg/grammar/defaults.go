package grammar

// Citation rule IDs in the default profile. The ID is emitted as the
// citation's pattern_type.
const (
	RuleBengaliShortForm  = "bengali_short_form"
	RuleEnglishFullForm   = "english_full_form"
	RuleEnglishShortForm  = "english_short_form"
	RulePresidentialOrder = "presidential_order"
)

// Lexical relation names, in classification priority order.
const (
	RelationAmendment     = "amendment"
	RelationRepeal        = "repeal"
	RelationSubstitution  = "substitution"
	RelationDependency    = "dependency"
	RelationIncorporation = "incorporation"
	RelationMention       = "mention"
)

// DefaultClauseAlphabet is the fixed 14-letter run of the Bengali alphabet
// used for parenthesized clause markers.
const DefaultClauseAlphabet = "কখগঘঙচছজঝঞটঠডঢ"

// DefaultRelationRules is the multilingual keyword dictionary keyed by
// lexical relation. Order is classification priority.
var DefaultRelationRules = []RelationRule{
	{Relation: RelationAmendment, Keywords: []string{
		"সংশোধন", "সংশোধনী", "সংশোধিত",
		"amend", "amended", "amendment", "amending",
	}},
	{Relation: RelationRepeal, Keywords: []string{
		"রহিত", "বাতিল",
		"repeal", "repealed", "repeals",
	}},
	{Relation: RelationSubstitution, Keywords: []string{
		"প্রতিস্থাপন", "প্রতিস্থাপিত",
		"substitute", "substituted", "substitution",
	}},
	{Relation: RelationDependency, Keywords: []string{
		"অধীন", "সাপেক্ষে",
		"subject to", "pursuant to", "under",
	}},
	{Relation: RelationIncorporation, Keywords: []string{
		"অন্তর্ভুক্ত", "সন্নিবেশিত",
		"incorporate", "incorporated", "incorporation", "inserted",
	}},
}

// RelationshipKeywords is a legacy alias for DefaultRelationRules kept for
// older callers. Same table, not a second copy.
var RelationshipKeywords = DefaultRelationRules

// DefaultNegationCues are the negation markers the classifier looks for in
// a context window. Advisory only; the cue list is flagged for linguist
// review and can be replaced through a profile.
var DefaultNegationCues = []string{
	"নয়", "নহে", "ব্যতীত",
	"not", "no longer", "never",
}

// Default returns the built-in, compiled grammar profile covering Bengali
// and English statute text. Each call builds and compiles a fresh Profile;
// the keyword tables are the shared package-level defaults and must not be
// mutated through it.
func Default() *Profile {
	p := &Profile{
		Name:    "bengali-english-statute",
		Version: "1.0",
		Citations: []CitationRule{
			{
				// "১৯৮৪ সনের ৩৬ নং আইন" / "... অধ্যাদেশ"
				ID:      RuleBengaliShortForm,
				Script:  ScriptBengali,
				Pattern: `([০-৯]{4})\s*সনের\s+([০-৯]+)\s*নং\s+(আইন|অধ্যাদেশ)`,
				Groups:  map[string]int{GroupYear: 1, GroupSerial: 2, GroupActType: 3},
			},
			{
				// "Companies Act, 1994 (XVIII of 1994)"
				ID:      RuleEnglishFullForm,
				Script:  ScriptEnglish,
				Pattern: `\b([A-Z][A-Za-z&'.\-]*(?:\s+[A-Z][A-Za-z&'.\-]*)*\s+Act),\s+(\d{4})\s+\(([IVXLCDM]+|\d+)\s+of\s+(\d{4})\)`,
				ActType: "Act",
				Groups:  map[string]int{GroupYear: 2, GroupSerial: 3},
			},
			{
				// "Act XVIII of 1994" / "Ordinance XXXVI of 1983"
				ID:      RuleEnglishShortForm,
				Script:  ScriptEnglish,
				Pattern: `\b(Act|Ordinance)\s+([IVXLCDM]+|\d+)\s+of\s+(\d{4})\b`,
				Groups:  map[string]int{GroupActType: 1, GroupSerial: 2, GroupYear: 3},
			},
			{
				// "P.O. 76 of 1972"
				ID:      RulePresidentialOrder,
				Script:  ScriptEnglish,
				Pattern: `\b(?:P\.O\.|P\.O|PO)\s*(?:No\.?\s*)?(\d+)\s+of\s+(\d{4})\b`,
				ActType: "P.O.",
				Groups:  map[string]int{GroupSerial: 1, GroupYear: 2},
			},
		},
		PreambleMarkers: []string{
			`এবং যেহেতু`,
			`যেহেতু`,
			`(?i)\bwhereas\b`,
		},
		EnactmentMarkers: []string{
			`সেহেতু এতদ্বারা আইন করা হইল`,
			`এতদ্বারা আইন করা হইল`,
			`(?i)\bbe it enacted\b`,
			`(?i)\bit is hereby enacted\b`,
		},
		SectionMarkers: SectionMarkerPatterns{
			Dhara:    `ধারা`,
			Chapter:  `অধ্যায়`,
			Schedule: `তফসিল`,
			// One or more Bengali digits immediately followed by a danda.
			// Both the Bengali glyph (U+09F7) and the shared danda
			// (U+0964) occur in source texts.
			NumeralDanda: `[০-৯]+[৷।]`,
		},
		ClauseAlphabet: DefaultClauseAlphabet,
		Relations:      DefaultRelationRules,
		NegationCues:   DefaultNegationCues,
	}
	if err := p.Compile(); err != nil {
		// The default tables are fixed at build time; a compile failure
		// is a programming error, not a runtime condition.
		panic("grammar: default profile failed to compile: " + err.Error())
	}
	return p
}
