package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

// Selector picks the next unseen quiz question.
type Selector struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	intN       func(n int) int
	logger     zerolog.Logger
}

// Option customizes a Selector.
type Option func(*Selector)

// WithRandom replaces the uniform source used to pick a candidate index.
// intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(s *Selector) {
		s.intN = intN
	}
}

func NewSelector(questions *repository.QuestionRepository, categories *repository.CategoryRepository, logger zerolog.Logger, opts ...Option) *Selector {
	s := &Selector{
		questions:  questions,
		categories: categories,
		intN:       rand.IntN,
		logger:     logger.With().Str("component", "quiz_selector").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns a random question from the requested category (any category
// when it is nil or unknown) that is not in req.PreviousQuestions.
func (s *Selector) Next(ctx context.Context, req Request) (question.Question, error) {
	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return question.Question{}, err
	}

	pool, err := s.questions.ListQuizCandidates(ctx, category, req.PreviousQuestions)
	if err != nil {
		return question.Question{}, err
	}
	if len(pool) == 0 {
		return question.Question{}, ErrPoolExhausted
	}

	idx := s.intN(len(pool))
	if idx < 0 || idx >= len(pool) {
		return question.Question{}, fmt.Errorf("random index %d outside pool of %d", idx, len(pool))
	}
	return question.FromRow(pool[idx]), nil
}

func (s *Selector) resolveCategory(ctx context.Context, id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	cat, err := s.categories.Get(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug().Int64("category", *id).Msg("unknown quiz category, drawing from all")
			return nil, nil
		}
		return nil, err
	}
	return &cat.ID, nil
}
