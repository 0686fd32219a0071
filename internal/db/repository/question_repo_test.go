package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

func TestQuestionRepository_ListPage(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	expect := []sqlcgen.Question{{ID: 11, Question: "Q", Answer: "A", Category: 1, Difficulty: 2}}
	store.On("ListQuestionsPage", mock.Anything, sqlcgen.ListQuestionsPageParams{Limit: 10, Offset: 10}).Return(expect, nil)

	got, err := repo.ListPage(context.Background(), 10, 10)
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_SearchEscapesWildcards(t *testing.T) {
	tests := []struct {
		term    string
		pattern string
	}{
		{"title", "%title%"},
		{"100%", `%100\%%`},
		{"snake_case", `%snake\_case%`},
		{`back\slash`, `%back\\slash%`},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			store := new(mockQuestionStore)
			repo := NewQuestionRepository(store)
			store.On("SearchQuestions", mock.Anything, tt.pattern).Return([]sqlcgen.Question{}, nil)

			_, err := repo.Search(context.Background(), tt.term)
			assert.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}

func TestQuestionRepository_ListQuizCandidates(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	category := int64(3)
	store.On("ListQuizCandidates", mock.Anything, sqlcgen.ListQuizCandidatesParams{
		Category: pgtype.Int8{Int64: 3, Valid: true},
		Exclude:  []int64{15, 24},
	}).Return([]sqlcgen.Question{{ID: 13}}, nil)
	store.On("ListQuizCandidates", mock.Anything, sqlcgen.ListQuizCandidatesParams{
		Exclude: []int64{},
	}).Return([]sqlcgen.Question{{ID: 1}, {ID: 2}}, nil)

	got, err := repo.ListQuizCandidates(context.Background(), &category, []int64{15, 24})
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.ListQuizCandidates(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Insert(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	params := sqlcgen.InsertQuestionParams{Question: "Q", Answer: "A", Category: 3, Difficulty: 1}
	store.On("InsertQuestion", mock.Anything, params).Return(sqlcgen.Question{}, errors.New("constraint violated"))

	_, err := repo.Insert(context.Background(), params)
	assert.ErrorContains(t, err, "insert question")
	store.AssertExpectations(t)
}

func TestQuestionRepository_Delete(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("DeleteQuestion", mock.Anything, int64(5)).Return(int64(1), nil)
	store.On("DeleteQuestion", mock.Anything, int64(250)).Return(int64(0), nil)
	store.On("DeleteQuestion", mock.Anything, int64(7)).Return(int64(0), errors.New("db down"))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.ErrorIs(t, repo.Delete(context.Background(), 250), ErrNotFound)

	err := repo.Delete(context.Background(), 7)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Count(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	store.On("CountQuestions", mock.Anything).Return(int64(19), nil)

	n, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(19), n)
}
