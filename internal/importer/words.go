package importer

import (
	"context"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// ValidateWords filters the submitted strings down to real words or
// phrases of the language, via batched LLM calls. The accepted subset
// keeps batch-submission order; under the fail_open policy, batches that
// exhaust their retries contribute nothing.
func (s *Service) ValidateWords(ctx context.Context, input ValidateWordsInput) ([]string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return dispatchBatches(ctx, input.Words, s.cfg.BatchSize, s.cfg.MaxConcurrent, s.cfg.AggregationPolicy, s.log,
		func(ctx context.Context, batch []string) ([]string, error) {
			var accepted []string
			err := s.retryer.Do(ctx, func(ctx context.Context) error {
				var callErr error
				accepted, callErr = s.llm.ValidateWords(ctx, batch, input.Language)
				return callErr
			})
			return accepted, err
		})
}

// GenerateDefinitions produces a front/back pair for each word, via
// batched LLM calls with the same retry and aggregation policy as
// validation.
func (s *Service) GenerateDefinitions(ctx context.Context, input GenerateDefinitionsInput) ([]domain.WordPair, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return dispatchBatches(ctx, input.Words, s.cfg.BatchSize, s.cfg.MaxConcurrent, s.cfg.AggregationPolicy, s.log,
		func(ctx context.Context, batch []string) ([]domain.WordPair, error) {
			var pairs []domain.WordPair
			err := s.retryer.Do(ctx, func(ctx context.Context) error {
				var callErr error
				pairs, callErr = s.llm.GenerateFlashcards(ctx, batch, input.Language)
				return callErr
			})
			return pairs, err
		})
}
