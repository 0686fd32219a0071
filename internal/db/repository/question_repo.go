package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionStore interface {
	CountQuestions(ctx context.Context) (int64, error)
	ListQuestionsPage(ctx context.Context, arg sqlcgen.ListQuestionsPageParams) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int64) ([]sqlcgen.Question, error)
	ListQuizCandidates(ctx context.Context, arg sqlcgen.ListQuizCandidatesParams) ([]sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// QuestionRepository wraps sqlc queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// Count returns the total number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.CountQuestions(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// ListPage returns at most limit questions ordered by id, skipping offset rows.
func (r *QuestionRepository) ListPage(ctx context.Context, limit, offset int32) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestionsPage(ctx, sqlcgen.ListQuestionsPageParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list questions page: %w", err)
	}
	return rows, nil
}

// Search matches term as a literal, case-insensitive substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	rows, err := r.store.SearchQuestions(ctx, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return rows, nil
}

// ListByCategory returns every question filed under category.
func (r *QuestionRepository) ListByCategory(ctx context.Context, category int64) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestionsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", category, err)
	}
	return rows, nil
}

// ListQuizCandidates returns questions in category (any category when nil)
// whose ids are not in exclude.
func (r *QuestionRepository) ListQuizCandidates(ctx context.Context, category *int64, exclude []int64) ([]sqlcgen.Question, error) {
	params := sqlcgen.ListQuizCandidatesParams{Exclude: exclude}
	if params.Exclude == nil {
		// ANY(NULL) would drop every row.
		params.Exclude = []int64{}
	}
	if category != nil {
		params.Category = pgtype.Int8{Int64: *category, Valid: true}
	}
	rows, err := r.store.ListQuizCandidates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	return rows, nil
}

// Insert stores a new question and returns the persisted row.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	row, err := r.store.InsertQuestion(ctx, params)
	if err != nil {
		return sqlcgen.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return row, nil
}

// Delete removes a question, returning ErrNotFound if no row matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
