package importer

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ llmGateway = &llmGatewayMock{}

type llmGatewayMock struct {
	ValidateWordsFunc      func(ctx context.Context, words []string, language string) ([]string, error)
	GenerateFlashcardsFunc func(ctx context.Context, words []string, language string) ([]domain.WordPair, error)
	ClassifyWordFunc       func(ctx context.Context, word, language string) (domain.WordClass, error)
	WordRelationsFunc      func(ctx context.Context, word, language string) (domain.WordRelations, error)
	RelatedPhrasesFunc     func(ctx context.Context, word, language string) ([]string, error)
	GenerateQuizFunc       func(ctx context.Context, spec domain.QuizSpec) (json.RawMessage, error)

	calls struct {
		ValidateWords []struct {
			Ctx      context.Context
			Words    []string
			Language string
		}
		GenerateFlashcards []struct {
			Ctx      context.Context
			Words    []string
			Language string
		}
		ClassifyWord []struct {
			Ctx      context.Context
			Word     string
			Language string
		}
		WordRelations []struct {
			Ctx      context.Context
			Word     string
			Language string
		}
		RelatedPhrases []struct {
			Ctx      context.Context
			Word     string
			Language string
		}
		GenerateQuiz []struct {
			Ctx  context.Context
			Spec domain.QuizSpec
		}
	}
	lockValidateWords      sync.RWMutex
	lockGenerateFlashcards sync.RWMutex
	lockClassifyWord       sync.RWMutex
	lockWordRelations      sync.RWMutex
	lockRelatedPhrases     sync.RWMutex
	lockGenerateQuiz       sync.RWMutex
}

func (mock *llmGatewayMock) ValidateWords(ctx context.Context, words []string, language string) ([]string, error) {
	if mock.ValidateWordsFunc == nil {
		panic("llmGatewayMock.ValidateWordsFunc: method is nil but llmGateway.ValidateWords was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Words    []string
		Language string
	}{Ctx: ctx, Words: words, Language: language}
	mock.lockValidateWords.Lock()
	mock.calls.ValidateWords = append(mock.calls.ValidateWords, callInfo)
	mock.lockValidateWords.Unlock()
	return mock.ValidateWordsFunc(ctx, words, language)
}

func (mock *llmGatewayMock) ValidateWordsCalls() []struct {
	Ctx      context.Context
	Words    []string
	Language string
} {
	mock.lockValidateWords.RLock()
	calls := mock.calls.ValidateWords
	mock.lockValidateWords.RUnlock()
	return calls
}

func (mock *llmGatewayMock) GenerateFlashcards(ctx context.Context, words []string, language string) ([]domain.WordPair, error) {
	if mock.GenerateFlashcardsFunc == nil {
		panic("llmGatewayMock.GenerateFlashcardsFunc: method is nil but llmGateway.GenerateFlashcards was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Words    []string
		Language string
	}{Ctx: ctx, Words: words, Language: language}
	mock.lockGenerateFlashcards.Lock()
	mock.calls.GenerateFlashcards = append(mock.calls.GenerateFlashcards, callInfo)
	mock.lockGenerateFlashcards.Unlock()
	return mock.GenerateFlashcardsFunc(ctx, words, language)
}

func (mock *llmGatewayMock) GenerateFlashcardsCalls() []struct {
	Ctx      context.Context
	Words    []string
	Language string
} {
	mock.lockGenerateFlashcards.RLock()
	calls := mock.calls.GenerateFlashcards
	mock.lockGenerateFlashcards.RUnlock()
	return calls
}

func (mock *llmGatewayMock) ClassifyWord(ctx context.Context, word, language string) (domain.WordClass, error) {
	if mock.ClassifyWordFunc == nil {
		panic("llmGatewayMock.ClassifyWordFunc: method is nil but llmGateway.ClassifyWord was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Word     string
		Language string
	}{Ctx: ctx, Word: word, Language: language}
	mock.lockClassifyWord.Lock()
	mock.calls.ClassifyWord = append(mock.calls.ClassifyWord, callInfo)
	mock.lockClassifyWord.Unlock()
	return mock.ClassifyWordFunc(ctx, word, language)
}

func (mock *llmGatewayMock) ClassifyWordCalls() []struct {
	Ctx      context.Context
	Word     string
	Language string
} {
	mock.lockClassifyWord.RLock()
	calls := mock.calls.ClassifyWord
	mock.lockClassifyWord.RUnlock()
	return calls
}

func (mock *llmGatewayMock) WordRelations(ctx context.Context, word, language string) (domain.WordRelations, error) {
	if mock.WordRelationsFunc == nil {
		panic("llmGatewayMock.WordRelationsFunc: method is nil but llmGateway.WordRelations was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Word     string
		Language string
	}{Ctx: ctx, Word: word, Language: language}
	mock.lockWordRelations.Lock()
	mock.calls.WordRelations = append(mock.calls.WordRelations, callInfo)
	mock.lockWordRelations.Unlock()
	return mock.WordRelationsFunc(ctx, word, language)
}

func (mock *llmGatewayMock) WordRelationsCalls() []struct {
	Ctx      context.Context
	Word     string
	Language string
} {
	mock.lockWordRelations.RLock()
	calls := mock.calls.WordRelations
	mock.lockWordRelations.RUnlock()
	return calls
}

func (mock *llmGatewayMock) RelatedPhrases(ctx context.Context, word, language string) ([]string, error) {
	if mock.RelatedPhrasesFunc == nil {
		panic("llmGatewayMock.RelatedPhrasesFunc: method is nil but llmGateway.RelatedPhrases was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Word     string
		Language string
	}{Ctx: ctx, Word: word, Language: language}
	mock.lockRelatedPhrases.Lock()
	mock.calls.RelatedPhrases = append(mock.calls.RelatedPhrases, callInfo)
	mock.lockRelatedPhrases.Unlock()
	return mock.RelatedPhrasesFunc(ctx, word, language)
}

func (mock *llmGatewayMock) RelatedPhrasesCalls() []struct {
	Ctx      context.Context
	Word     string
	Language string
} {
	mock.lockRelatedPhrases.RLock()
	calls := mock.calls.RelatedPhrases
	mock.lockRelatedPhrases.RUnlock()
	return calls
}

func (mock *llmGatewayMock) GenerateQuiz(ctx context.Context, spec domain.QuizSpec) (json.RawMessage, error) {
	if mock.GenerateQuizFunc == nil {
		panic("llmGatewayMock.GenerateQuizFunc: method is nil but llmGateway.GenerateQuiz was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Spec domain.QuizSpec
	}{Ctx: ctx, Spec: spec}
	mock.lockGenerateQuiz.Lock()
	mock.calls.GenerateQuiz = append(mock.calls.GenerateQuiz, callInfo)
	mock.lockGenerateQuiz.Unlock()
	return mock.GenerateQuizFunc(ctx, spec)
}

func (mock *llmGatewayMock) GenerateQuizCalls() []struct {
	Ctx  context.Context
	Spec domain.QuizSpec
} {
	mock.lockGenerateQuiz.RLock()
	calls := mock.calls.GenerateQuiz
	mock.lockGenerateQuiz.RUnlock()
	return calls
}
