package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// quizGenJob generates the quizzes for one imported flashcard. Each of
// its units is a (flashcard, quiz kind) pair; unit failures are isolated
// and never fail the job, they just contribute no quiz rows.
type quizGenJob struct {
	svc       *Service
	task      domain.ImportTask
	flashcard domain.Flashcard
	units     []domain.ImportUnit
}

func (j *quizGenJob) Name() string {
	return "quizgen:" + j.flashcard.Front
}

func (j *quizGenJob) Run(ctx context.Context) error {
	s := j.svc

	typeIDs, err := s.quizTypeIDs(ctx)
	if err != nil {
		// Units stay pending; a requeue pass picks them up later.
		return err
	}

	class, relations, phrases := j.enrich(ctx)

	for _, unit := range j.units {
		j.processUnit(ctx, unit, typeIDs, class, relations, phrases)
	}
	return nil
}

// enrich classifies the flashcard and, for single words, mines relations
// and phrases. Enrichment failures degrade to empty context — the kinds
// that need it are then skipped.
func (j *quizGenJob) enrich(ctx context.Context) (domain.WordClass, domain.WordRelations, []string) {
	s := j.svc
	word := j.flashcard.Front

	class := domain.WordClassPhrase
	err := s.retryer.Do(ctx, func(ctx context.Context) error {
		var callErr error
		class, callErr = s.llm.ClassifyWord(ctx, word, j.task.Language)
		return callErr
	})
	if err != nil {
		s.log.WarnContext(ctx, "word classification failed, treating as phrase",
			slog.String("word", word), slog.Any("error", err))
		return domain.WordClassPhrase, domain.WordRelations{}, nil
	}

	if class != domain.WordClassWord {
		return class, domain.WordRelations{}, nil
	}

	var relations domain.WordRelations
	if err := s.retryer.Do(ctx, func(ctx context.Context) error {
		var callErr error
		relations, callErr = s.llm.WordRelations(ctx, word, j.task.Language)
		return callErr
	}); err != nil {
		s.log.WarnContext(ctx, "relation mining failed",
			slog.String("word", word), slog.Any("error", err))
	}

	var phrases []string
	if err := s.retryer.Do(ctx, func(ctx context.Context) error {
		var callErr error
		phrases, callErr = s.llm.RelatedPhrases(ctx, word, j.task.Language)
		return callErr
	}); err != nil {
		s.log.WarnContext(ctx, "phrase mining failed",
			slog.String("word", word), slog.Any("error", err))
	}

	return class, relations, phrases
}

// processUnit resolves one unit: skip, succeed with a quiz row, or fail
// open after the attempt budget.
func (j *quizGenJob) processUnit(
	ctx context.Context,
	unit domain.ImportUnit,
	typeIDs map[domain.QuizKind]uuid.UUID,
	class domain.WordClass,
	relations domain.WordRelations,
	phrases []string,
) {
	s := j.svc
	kind := unit.QuizKind

	typeID, ok := typeIDs[kind]
	if !ok {
		s.log.ErrorContext(ctx, "quiz kind missing from reference table",
			slog.String("kind", kind.String()))
		j.resolve(ctx, unit, domain.ImportUnitFailed, unit.Attempts, nil, typeID)
		return
	}

	// Kinds whose required context is absent are skipped: resolved with
	// no quiz rows.
	switch kind.RequiredContext() {
	case domain.QuizContextRelations:
		if len(relations.Synonyms) == 0 && len(relations.Antonyms) == 0 {
			j.resolve(ctx, unit, domain.ImportUnitSucceeded, unit.Attempts, nil, typeID)
			return
		}
	case domain.QuizContextPhrases:
		if len(phrases) == 0 {
			j.resolve(ctx, unit, domain.ImportUnitSucceeded, unit.Attempts, nil, typeID)
			return
		}
	}

	spec := domain.QuizSpec{
		Kind:      kind,
		Word:      j.flashcard.Front,
		Back:      j.flashcard.Back,
		Language:  j.task.Language,
		Relations: relations,
		Phrases:   phrases,
	}

	var (
		payload  json.RawMessage
		genErr   error
		attempts = unit.Attempts
	)
	for attempts < s.cfg.UnitMaxAttempts {
		attempts++
		genErr = s.retryer.Do(ctx, func(ctx context.Context) error {
			var callErr error
			payload, callErr = s.llm.GenerateQuiz(ctx, spec)
			return callErr
		})
		if genErr == nil {
			break
		}
		if errors.Is(genErr, domain.ErrSchemaViolation) {
			// Provider contract breach; more attempts won't fix it.
			break
		}
		if ctx.Err() != nil {
			return
		}
	}

	if genErr != nil {
		s.log.WarnContext(ctx, "quiz unit failed open",
			slog.String("word", j.flashcard.Front),
			slog.String("kind", kind.String()),
			slog.Int("attempts", attempts),
			slog.Any("error", genErr))
		j.resolve(ctx, unit, domain.ImportUnitFailed, attempts, nil, typeID)
		return
	}

	j.resolve(ctx, unit, domain.ImportUnitSucceeded, attempts, payload, typeID)
}

// resolve flips the unit's status and, when a payload is present, inserts
// the quiz row in the same transaction. A unit already resolved by a
// concurrent worker is left alone.
func (j *quizGenJob) resolve(
	ctx context.Context,
	unit domain.ImportUnit,
	status domain.ImportUnitStatus,
	attempts int,
	payload json.RawMessage,
	typeID uuid.UUID,
) {
	s := j.svc

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tasks.MarkUnit(ctx, unit.ID, status, attempts); err != nil {
			return err
		}
		if status != domain.ImportUnitSucceeded || payload == nil {
			return nil
		}

		_, err := s.quizzes.Create(ctx, domain.Quiz{
			ID:          uuid.New(),
			UserID:      j.task.UserID,
			FlashcardID: j.flashcard.ID,
			QuizTypeID:  typeID,
			Language:    j.task.Language,
			Content:     payload,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.log.DebugContext(ctx, "unit already resolved",
				slog.String("unit_id", unit.ID.String()))
			return
		}
		s.log.ErrorContext(ctx, "resolve quiz unit",
			slog.String("unit_id", unit.ID.String()),
			slog.Any("error", err))
	}
}
