package domain

// WordPair is a front/back draft produced during import, before a
// Flashcard row exists for it.
type WordPair struct {
	Front string
	Back  string
}

// WordRelations holds synonyms and antonyms mined for a single word.
// Empty slices are valid: not every word has antonyms.
type WordRelations struct {
	Synonyms []string
	Antonyms []string
}

// QuizSpec describes one quiz to generate for a flashcard. Relations and
// Phrases are consulted only by the kinds whose RequiredContext demands
// them.
type QuizSpec struct {
	Kind      QuizKind
	Word      string
	Back      string
	Language  string
	Relations WordRelations
	Phrases   []string
}
