// Package importer implements the word-import pipeline: batched LLM
// validation and definition generation, atomic flashcard persistence,
// and asynchronous per-flashcard quiz generation tracked by persisted
// import tasks.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/config"
	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/internal/worker"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type llmGateway interface {
	ValidateWords(ctx context.Context, words []string, language string) ([]string, error)
	GenerateFlashcards(ctx context.Context, words []string, language string) ([]domain.WordPair, error)
	ClassifyWord(ctx context.Context, word, language string) (domain.WordClass, error)
	WordRelations(ctx context.Context, word, language string) (domain.WordRelations, error)
	RelatedPhrases(ctx context.Context, word, language string) ([]string, error)
	GenerateQuiz(ctx context.Context, spec domain.QuizSpec) (json.RawMessage, error)
}

type flashcardRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, front, back, language string) (domain.Flashcard, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)
}

type catalogRepo interface {
	GetOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Catalog, error)
	LinkFlashcard(ctx context.Context, catalogID, flashcardID uuid.UUID) error
}

type taskRepo interface {
	CreateTask(ctx context.Context, task domain.ImportTask, units []domain.ImportUnit) error
	GetTask(ctx context.Context, taskID uuid.UUID) (domain.ImportTask, error)
	CountResolved(ctx context.Context, taskID uuid.UUID) (int, error)
	MarkUnit(ctx context.Context, unitID uuid.UUID, status domain.ImportUnitStatus, attempts int) error
	ListPending(ctx context.Context, limit int) ([]domain.ImportUnit, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

type quizRepo interface {
	ListTypes(ctx context.Context) ([]domain.QuizType, error)
	Create(ctx context.Context, quiz domain.Quiz) (uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type jobPool interface {
	Submit(job worker.Job)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service orchestrates word imports end to end.
type Service struct {
	log        *slog.Logger
	llm        llmGateway
	flashcards flashcardRepo
	catalogs   catalogRepo
	tasks      taskRepo
	quizzes    quizRepo
	tx         txManager
	pool       jobPool
	retryer    *Retryer
	cfg        config.ImporterConfig

	typesMu sync.Mutex
	typeIDs map[domain.QuizKind]uuid.UUID
}

// NewService creates the import service. retryIf classifies transport
// errors as retryable; wire it to the LLM adapter's classifier.
func NewService(
	log *slog.Logger,
	gateway llmGateway,
	flashcards flashcardRepo,
	catalogs catalogRepo,
	tasks taskRepo,
	quizzes quizRepo,
	tx txManager,
	pool jobPool,
	cfg config.ImporterConfig,
	retryIf func(error) bool,
) *Service {
	return &Service{
		log:        log.With("service", "importer"),
		llm:        gateway,
		flashcards: flashcards,
		catalogs:   catalogs,
		tasks:      tasks,
		quizzes:    quizzes,
		tx:         tx,
		pool:       pool,
		cfg:        cfg,
		retryer:    NewRetryer(cfg.RetryMaxAttempts, cfg.RetryBaseDelay, cfg.RetryMaxDelay, retryIf),
	}
}

// quizTypeIDs resolves the quiz-kind → quiz_type row mapping and caches
// it; the taxonomy is seeded at migration time and never changes while
// the process runs. A load failure is not cached.
func (s *Service) quizTypeIDs(ctx context.Context) (map[domain.QuizKind]uuid.UUID, error) {
	s.typesMu.Lock()
	defer s.typesMu.Unlock()

	if s.typeIDs != nil {
		return s.typeIDs, nil
	}

	types, err := s.quizzes.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quiz types: %w", err)
	}

	ids := make(map[domain.QuizKind]uuid.UUID, len(types))
	for _, qt := range types {
		ids[qt.Name] = qt.ID
	}
	s.typeIDs = ids
	return ids, nil
}
