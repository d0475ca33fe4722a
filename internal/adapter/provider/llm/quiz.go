package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

type choiceQuiz struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`
}

type openClozeQuiz struct {
	Sentence      string `json:"sentence"`
	CorrectAnswer string `json:"correct_answer"`
	Hint          string `json:"hint"`
}

type choiceClozeQuiz struct {
	Sentence      string   `json:"sentence"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`
}

type proverbClozeQuiz struct {
	Proverb       string `json:"proverb"`
	CorrectAnswer string `json:"correct_answer"`
	Hint          string `json:"hint"`
}

type boolQuiz struct {
	Statement     string `json:"statement"`
	CorrectAnswer *bool  `json:"correct_answer"`
}

// GenerateQuiz produces the content payload for one (word, kind) pair.
// The returned bytes are the validated JSON object, stored verbatim in
// the quiz row.
func (g *Gateway) GenerateQuiz(ctx context.Context, in domain.QuizSpec) (json.RawMessage, error) {
	system, user := quizPrompt(in)

	jsonStr, err := g.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	if err := validateQuizPayload(in.Kind, jsonStr); err != nil {
		return nil, err
	}
	return json.RawMessage(jsonStr), nil
}

// validateQuizPayload checks the payload against the shape its kind
// promises. The switch is exhaustive over the quiz taxonomy; a new kind
// without a case here fails loudly instead of storing junk.
func validateQuizPayload(kind domain.QuizKind, jsonStr string) error {
	switch kind {
	case domain.QuizKindDefinitionToWord,
		domain.QuizKindWordToDefinition,
		domain.QuizKindSynonymSelection,
		domain.QuizKindAntonymSelection,
		domain.QuizKindScenario,
		domain.QuizKindWordToProverb,
		domain.QuizKindProverbToWord:
		var q choiceQuiz
		if err := decodeStrict(jsonStr, &q); err != nil {
			return err
		}
		if q.Question == "" || len(q.Choices) == 0 || q.CorrectAnswer == "" {
			return fmt.Errorf("%s: incomplete choice quiz: %w", kind, domain.ErrSchemaViolation)
		}

	case domain.QuizKindOpenCloze:
		var q openClozeQuiz
		if err := decodeStrict(jsonStr, &q); err != nil {
			return err
		}
		if q.Sentence == "" || q.CorrectAnswer == "" || q.Hint == "" {
			return fmt.Errorf("%s: incomplete cloze quiz: %w", kind, domain.ErrSchemaViolation)
		}

	case domain.QuizKindChoiceCloze:
		var q choiceClozeQuiz
		if err := decodeStrict(jsonStr, &q); err != nil {
			return err
		}
		if q.Sentence == "" || len(q.Choices) == 0 || q.CorrectAnswer == "" {
			return fmt.Errorf("%s: incomplete cloze quiz: %w", kind, domain.ErrSchemaViolation)
		}

	case domain.QuizKindProverbCloze:
		var q proverbClozeQuiz
		if err := decodeStrict(jsonStr, &q); err != nil {
			return err
		}
		if q.Proverb == "" || q.CorrectAnswer == "" || q.Hint == "" {
			return fmt.Errorf("%s: incomplete proverb quiz: %w", kind, domain.ErrSchemaViolation)
		}

	case domain.QuizKindMeaningValidation, domain.QuizKindUsageValidation:
		var q boolQuiz
		if err := decodeStrict(jsonStr, &q); err != nil {
			return err
		}
		if q.Statement == "" || q.CorrectAnswer == nil {
			return fmt.Errorf("%s: incomplete true/false quiz: %w", kind, domain.ErrSchemaViolation)
		}

	default:
		return fmt.Errorf("unknown quiz kind %q: %w", kind, domain.ErrSchemaViolation)
	}

	return nil
}

// quizPrompt builds the system and user messages for a quiz kind. Each
// prompt names the exact JSON shape the validator expects back.
func quizPrompt(in domain.QuizSpec) (system, user string) {
	const choiceShape = `{"question": "<question>", "choices": ["<choice>", ...], "correct_answer": "<one of choices>"}`

	switch in.Kind {
	case domain.QuizKindDefinitionToWord:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: given a definition, pick the word it defines. "+
				"Provide 4 choices including the correct word. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)

	case domain.QuizKindWordToDefinition:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: given a word, pick its definition. "+
				"Provide 4 definitions including the correct one. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)

	case domain.QuizKindSynonymSelection:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: pick the synonym of the given word. "+
				"Use the provided synonyms; distractors must not be synonyms. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nSynonyms: %s", in.Word, strings.Join(in.Relations.Synonyms, ", "))

	case domain.QuizKindAntonymSelection:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: pick the antonym of the given word. "+
				"Use the provided antonyms; distractors must not be antonyms. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nAntonyms: %s", in.Word, strings.Join(in.Relations.Antonyms, ", "))

	case domain.QuizKindOpenCloze:
		system = fmt.Sprintf(
			"Create a fill-in-the-blank quiz for a %s learner. Write a natural sentence using the word, "+
				"replace the word with a blank, and give a short hint. Output ONLY a JSON object: "+
				`{"sentence": "<sentence with ___>", "correct_answer": "<word>", "hint": "<hint>"}. No markdown.`,
			in.Language)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)

	case domain.QuizKindChoiceCloze:
		system = fmt.Sprintf(
			"Create a fill-in-the-blank quiz with choices for a %s learner. Write a natural sentence using "+
				"the word, replace the word with a blank, and provide 4 choices. Output ONLY a JSON object: "+
				`{"sentence": "<sentence with ___>", "choices": ["<choice>", ...], "correct_answer": "<word>"}. No markdown.`,
			in.Language)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)

	case domain.QuizKindScenario:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: describe a short everyday scenario and ask which "+
				"word fits it best. Provide 4 choices. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)

	case domain.QuizKindWordToProverb:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: given a word, pick the proverb or set phrase that "+
				"features it. Use the provided phrases as material. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nPhrases: %s", in.Word, strings.Join(in.Phrases, "; "))

	case domain.QuizKindProverbToWord:
		system = fmt.Sprintf(
			"Create a multiple-choice quiz for a %s learner: given a proverb with the key word hidden, pick the "+
				"missing word. Use the provided phrases as material. Output ONLY a JSON object: %s. No markdown.",
			in.Language, choiceShape)
		user = fmt.Sprintf("Word: %s\nPhrases: %s", in.Word, strings.Join(in.Phrases, "; "))

	case domain.QuizKindProverbCloze:
		system = fmt.Sprintf(
			"Create a fill-in-the-blank quiz for a %s learner from a proverb featuring the word. Replace the "+
				"word with a blank and give a short hint. Output ONLY a JSON object: "+
				`{"proverb": "<proverb with ___>", "correct_answer": "<word>", "hint": "<hint>"}. No markdown.`,
			in.Language)
		user = fmt.Sprintf("Word: %s\nPhrases: %s", in.Word, strings.Join(in.Phrases, "; "))

	case domain.QuizKindMeaningValidation:
		system = fmt.Sprintf(
			"Create a true/false quiz for a %s learner: state a meaning for the word that is either correct or "+
				"plausibly wrong. Output ONLY a JSON object: "+
				`{"statement": "<statement>", "correct_answer": <true|false>}. No markdown.`,
			in.Language)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)

	case domain.QuizKindUsageValidation:
		system = fmt.Sprintf(
			"Create a true/false quiz for a %s learner: write a sentence that either uses the word correctly or "+
				"misuses it. Output ONLY a JSON object: "+
				`{"statement": "<sentence>", "correct_answer": <true|false>}. No markdown.`,
			in.Language)
		user = fmt.Sprintf("Word: %s\nDefinition: %s", in.Word, in.Back)
	}

	return system, user
}
