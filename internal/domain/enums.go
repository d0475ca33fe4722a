package domain

// Visibility represents who can read a catalog.
type Visibility string

const (
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityPublic  Visibility = "PUBLIC"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPrivate, VisibilityPublic:
		return true
	}
	return false
}

// WordClass is the LLM's classification of an imported term.
type WordClass string

const (
	WordClassWord   WordClass = "word"
	WordClassPhrase WordClass = "phrase"
)

func (c WordClass) String() string { return string(c) }

func (c WordClass) IsValid() bool {
	switch c {
	case WordClassWord, WordClassPhrase:
		return true
	}
	return false
}

// QuizKind is the closed taxonomy of generated quiz types.
// The string values double as the names seeded into the quiz_types table.
type QuizKind string

const (
	QuizKindDefinitionToWord  QuizKind = "Definition-to-Word (Multiple-Choice)"
	QuizKindWordToDefinition  QuizKind = "Word-to-Definition (Multiple-Choice)"
	QuizKindSynonymSelection  QuizKind = "Synonym Selection (Multiple-Choice)"
	QuizKindAntonymSelection  QuizKind = "Antonym Selection (Multiple-Choice)"
	QuizKindOpenCloze         QuizKind = "Open-Ended Cloze (Cloze)"
	QuizKindChoiceCloze       QuizKind = "Multiple-Choice Cloze (Multiple-Choice)"
	QuizKindScenario          QuizKind = "Scenario Identification (Multiple-Choice)"
	QuizKindWordToProverb     QuizKind = "Word to Proverb (Multiple-Choice)"
	QuizKindProverbToWord     QuizKind = "Proverb to Word (Multiple-Choice)"
	QuizKindProverbCloze      QuizKind = "Proverb to Word (Cloze)"
	QuizKindMeaningValidation QuizKind = "Meaning Validation (True/False)"
	QuizKindUsageValidation   QuizKind = "Usage Validation (True/False)"
)

// AllQuizKinds lists every quiz kind in seeding order.
var AllQuizKinds = []QuizKind{
	QuizKindDefinitionToWord,
	QuizKindWordToDefinition,
	QuizKindSynonymSelection,
	QuizKindAntonymSelection,
	QuizKindOpenCloze,
	QuizKindChoiceCloze,
	QuizKindScenario,
	QuizKindWordToProverb,
	QuizKindProverbToWord,
	QuizKindProverbCloze,
	QuizKindMeaningValidation,
	QuizKindUsageValidation,
}

func (k QuizKind) String() string { return string(k) }

func (k QuizKind) IsValid() bool {
	switch k {
	case QuizKindDefinitionToWord, QuizKindWordToDefinition,
		QuizKindSynonymSelection, QuizKindAntonymSelection,
		QuizKindOpenCloze, QuizKindChoiceCloze, QuizKindScenario,
		QuizKindWordToProverb, QuizKindProverbToWord, QuizKindProverbCloze,
		QuizKindMeaningValidation, QuizKindUsageValidation:
		return true
	}
	return false
}

// QuizContext is the enrichment data a quiz kind needs beyond the
// flashcard itself.
type QuizContext int

const (
	// QuizContextNone — the front/back pair is enough.
	QuizContextNone QuizContext = iota
	// QuizContextRelations — needs synonyms/antonyms.
	QuizContextRelations
	// QuizContextPhrases — needs related phrases or proverbs.
	QuizContextPhrases
)

// RequiredContext partitions quiz kinds by the enrichment data they need.
// Kinds whose required context is absent for a given word are skipped
// during generation.
func (k QuizKind) RequiredContext() QuizContext {
	switch k {
	case QuizKindSynonymSelection, QuizKindAntonymSelection:
		return QuizContextRelations
	case QuizKindWordToProverb, QuizKindProverbToWord, QuizKindProverbCloze:
		return QuizContextPhrases
	case QuizKindDefinitionToWord, QuizKindWordToDefinition,
		QuizKindOpenCloze, QuizKindChoiceCloze, QuizKindScenario,
		QuizKindMeaningValidation, QuizKindUsageValidation:
		return QuizContextNone
	}
	return QuizContextNone
}

// ImportUnitStatus is the lifecycle state of one quiz-generation unit.
type ImportUnitStatus string

const (
	ImportUnitPending   ImportUnitStatus = "PENDING"
	ImportUnitSucceeded ImportUnitStatus = "SUCCEEDED"
	ImportUnitFailed    ImportUnitStatus = "FAILED"
)

func (s ImportUnitStatus) String() string { return string(s) }

func (s ImportUnitStatus) IsValid() bool {
	switch s {
	case ImportUnitPending, ImportUnitSucceeded, ImportUnitFailed:
		return true
	}
	return false
}

// Resolved reports whether the unit has reached a terminal state.
// Failed units still count toward completion; they contribute no quiz rows.
func (s ImportUnitStatus) Resolved() bool {
	return s == ImportUnitSucceeded || s == ImportUnitFailed
}
