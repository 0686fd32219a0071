package question

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Service composes question and category queries from request parameters.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	logger     zerolog.Logger
}

func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// ListCategories returns every category ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return categoriesFromRows(rows), nil
}

// ListPage returns the 1-based page of questions ordered by id. An empty
// window, including page < 1 and an empty store, is ErrPageNotFound.
func (s *Service) ListPage(ctx context.Context, page int) (Page, error) {
	// Offsets past int32 cannot address a row; reject before multiplying.
	if page < 1 || page > math.MaxInt32/PageSize+1 {
		return Page{}, ErrPageNotFound
	}
	offset := int32((page - 1) * PageSize)

	rows, err := s.questions.ListPage(ctx, PageSize, offset)
	if err != nil {
		return Page{}, err
	}
	if len(rows) == 0 {
		return Page{}, ErrPageNotFound
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return Page{}, err
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return Page{}, err
	}

	result := Page{
		Questions:  fromRows(rows),
		Total:      total,
		Categories: categories,
	}
	if len(categories) > 0 {
		current := categories[0]
		result.CurrentCategory = &current
	}
	return result, nil
}

// Search returns every question whose text contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) (SearchResult, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, err
	}
	questions := fromRows(rows)
	return SearchResult{Questions: questions, Total: len(questions)}, nil
}

// ByCategory returns every question filed under categoryID. The category
// does not have to exist.
func (s *Service) ByCategory(ctx context.Context, categoryID int64) (CategoryResult, error) {
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryResult{}, err
	}
	questions := fromRows(rows)
	return CategoryResult{
		Questions:       questions,
		Total:           len(questions),
		CurrentCategory: categoryID,
	}, nil
}

// Create validates and stores a new question. The category id is not
// checked against existing categories.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Question, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return Question{}, fmt.Errorf("%w: question and answer are required", ErrUnprocessable)
	}
	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return Question{}, fmt.Errorf("%w: %w", ErrUnprocessable, err)
	}
	s.logger.Debug().Int64("question_id", row.ID).Int64("category", row.Category).Msg("question created")
	return FromRow(row), nil
}

// Delete removes the question with id, or returns ErrQuestionNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return nil
}
