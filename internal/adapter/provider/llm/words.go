package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

type validateResponse struct {
	ValidWords []string `json:"valid_words"`
}

type flashcardJSON struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type flashcardsResponse struct {
	Flashcards []flashcardJSON `json:"flashcards"`
}

type wordTypeResponse struct {
	Type string `json:"type"`
}

type relationsResponse struct {
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
}

type phrasesResponse struct {
	Phrases []string `json:"phrases"`
}

// decodeStrict unmarshals into v rejecting unknown fields. Any decode
// failure is a schema violation: the model answered, but not in the
// agreed shape.
func decodeStrict(jsonStr string, v any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(jsonStr)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode llm response: %v: %w", err, domain.ErrSchemaViolation)
	}
	return nil
}

// ValidateWords asks the model which of the submitted strings are real
// words or phrases of the given language. Entries absent from the answer
// were rejected.
func (g *Gateway) ValidateWords(ctx context.Context, words []string, language string) ([]string, error) {
	system := fmt.Sprintf(
		"You are a helpful assistant that validates %s words and phrases. "+
			"Return only valid %s words or phrases, filtering out any non-%s text. "+
			`Output ONLY a JSON object: {"valid_words": ["<word>", ...]}. No markdown, no explanations.`,
		language, language, language)

	jsonStr, err := g.complete(ctx, system, strings.Join(words, "\n"))
	if err != nil {
		return nil, err
	}

	var resp validateResponse
	if err := decodeStrict(jsonStr, &resp); err != nil {
		return nil, err
	}
	if resp.ValidWords == nil {
		return nil, fmt.Errorf("missing valid_words: %w", domain.ErrSchemaViolation)
	}
	return resp.ValidWords, nil
}

// GenerateFlashcards produces a concise English definition for each word,
// returned as front/back pairs.
func (g *Gateway) GenerateFlashcards(ctx context.Context, words []string, language string) ([]domain.WordPair, error) {
	system := fmt.Sprintf(
		"Generate concise definitions in English for the following %s words or phrases. "+
			`Output ONLY a JSON object: {"flashcards": [{"front": "<word>", "back": "<definition>"}, ...]}. `+
			"No markdown, no explanations.",
		language)

	jsonStr, err := g.complete(ctx, system, strings.Join(words, "\n"))
	if err != nil {
		return nil, err
	}

	var resp flashcardsResponse
	if err := decodeStrict(jsonStr, &resp); err != nil {
		return nil, err
	}
	if resp.Flashcards == nil {
		return nil, fmt.Errorf("missing flashcards: %w", domain.ErrSchemaViolation)
	}

	pairs := make([]domain.WordPair, 0, len(resp.Flashcards))
	for _, fc := range resp.Flashcards {
		if fc.Front == "" || fc.Back == "" {
			return nil, fmt.Errorf("flashcard with empty front or back: %w", domain.ErrSchemaViolation)
		}
		pairs = append(pairs, domain.WordPair{Front: fc.Front, Back: fc.Back})
	}
	return pairs, nil
}

// ClassifyWord decides whether an entry is a single word or a multi-word
// phrase. Phrases skip relation mining and proverb quizzes downstream.
func (g *Gateway) ClassifyWord(ctx context.Context, word, language string) (domain.WordClass, error) {
	system := fmt.Sprintf(
		"Classify the given %s entry as a single word or a multi-word phrase. "+
			`Output ONLY a JSON object: {"type": "word"} or {"type": "phrase"}. No markdown.`,
		language)

	jsonStr, err := g.complete(ctx, system, word)
	if err != nil {
		return "", err
	}

	var resp wordTypeResponse
	if err := decodeStrict(jsonStr, &resp); err != nil {
		return "", err
	}

	class := domain.WordClass(resp.Type)
	if !class.IsValid() {
		return "", fmt.Errorf("unknown word type %q: %w", resp.Type, domain.ErrSchemaViolation)
	}
	return class, nil
}

// WordRelations mines synonyms and antonyms for a word.
func (g *Gateway) WordRelations(ctx context.Context, word, language string) (domain.WordRelations, error) {
	system := fmt.Sprintf(
		"List common synonyms and antonyms of the given %s word, in %s. "+
			`Output ONLY a JSON object: {"synonyms": ["<word>", ...], "antonyms": ["<word>", ...]}. `+
			"Use empty arrays when none exist. No markdown.",
		language, language)

	jsonStr, err := g.complete(ctx, system, word)
	if err != nil {
		return domain.WordRelations{}, err
	}

	var resp relationsResponse
	if err := decodeStrict(jsonStr, &resp); err != nil {
		return domain.WordRelations{}, err
	}
	if resp.Synonyms == nil || resp.Antonyms == nil {
		return domain.WordRelations{}, fmt.Errorf("missing synonyms or antonyms: %w", domain.ErrSchemaViolation)
	}
	return domain.WordRelations{Synonyms: resp.Synonyms, Antonyms: resp.Antonyms}, nil
}

// RelatedPhrases mines proverbs and set phrases featuring the word.
func (g *Gateway) RelatedPhrases(ctx context.Context, word, language string) ([]string, error) {
	system := fmt.Sprintf(
		"List well-known %s proverbs, idioms or set phrases that feature the given word. "+
			`Output ONLY a JSON object: {"phrases": ["<phrase>", ...]}. `+
			"Use an empty array when none exist. No markdown.",
		language)

	jsonStr, err := g.complete(ctx, system, word)
	if err != nil {
		return nil, err
	}

	var resp phrasesResponse
	if err := decodeStrict(jsonStr, &resp); err != nil {
		return nil, err
	}
	if resp.Phrases == nil {
		return nil, fmt.Errorf("missing phrases: %w", domain.ErrSchemaViolation)
	}
	return resp.Phrases, nil
}
