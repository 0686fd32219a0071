// Package dbtest provides an in-memory stand-in for the sqlc query set,
// for tests that exercise repositories and handlers without Postgres.
package dbtest

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Store mimics the SQL semantics of the queries in db/queries.
// Setting Err makes every call fail with it.
type Store struct {
	mu         sync.Mutex
	categories []sqlcgen.Category
	questions  []sqlcgen.Question
	nextID     int64

	Err error
}

// NewStore copies the given rows into a fresh store.
func NewStore(categories []sqlcgen.Category, questions []sqlcgen.Question) *Store {
	s := &Store{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
	}
	for _, q := range questions {
		s.nextID = max(s.nextID, q.ID)
	}
	slices.SortFunc(s.categories, func(a, b sqlcgen.Category) int { return int(a.ID - b.ID) })
	slices.SortFunc(s.questions, func(a, b sqlcgen.Question) int { return int(a.ID - b.ID) })
	return s
}

// Seeded returns a store loaded with SampleCategories and SampleQuestions.
func Seeded() *Store {
	return NewStore(SampleCategories(), SampleQuestions())
}

// Questions returns a snapshot of the stored questions ordered by id.
func (s *Store) Questions() []sqlcgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.questions)
}

func (s *Store) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.categories), nil
}

func (s *Store) GetCategory(ctx context.Context, id int64) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Category{}, s.Err
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, pgx.ErrNoRows
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.questions)), nil
}

func (s *Store) ListQuestionsPage(ctx context.Context, arg sqlcgen.ListQuestionsPageParams) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	start := int(arg.Offset)
	if start < 0 || arg.Limit <= 0 || start >= len(s.questions) {
		return nil, nil
	}
	end := min(start+int(arg.Limit), len(s.questions))
	return slices.Clone(s.questions[start:end]), nil
}

func (s *Store) SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error) {
	re, err := likeToRegexp(pattern)
	if err != nil {
		return nil, err
	}
	return s.filter(func(q sqlcgen.Question) bool { return re.MatchString(q.Question) })
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, category int64) ([]sqlcgen.Question, error) {
	return s.filter(func(q sqlcgen.Question) bool { return q.Category == category })
}

func (s *Store) ListQuizCandidates(ctx context.Context, arg sqlcgen.ListQuizCandidatesParams) ([]sqlcgen.Question, error) {
	if arg.Exclude == nil {
		// id = ANY(NULL) is NULL, so Postgres returns nothing.
		return s.filter(func(sqlcgen.Question) bool { return false })
	}
	return s.filter(func(q sqlcgen.Question) bool {
		if arg.Category.Valid && q.Category != arg.Category.Int64 {
			return false
		}
		return !slices.Contains(arg.Exclude, q.ID)
	})
}

func (s *Store) InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Question{}, s.Err
	}
	s.nextID++
	row := sqlcgen.Question{
		ID:         s.nextID,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}
	s.questions = append(s.questions, row)
	return row, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	before := len(s.questions)
	s.questions = slices.DeleteFunc(s.questions, func(q sqlcgen.Question) bool { return q.ID == id })
	return int64(before - len(s.questions)), nil
}

func (s *Store) filter(keep func(sqlcgen.Question) bool) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []sqlcgen.Question
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// likeToRegexp translates an ILIKE pattern with backslash escapes.
func likeToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?is)^`)
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
		case r == '\\':
			escaped = true
		case r == '%':
			b.WriteString(`.*`)
		case r == '_':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return regexp.Compile(b.String())
}
