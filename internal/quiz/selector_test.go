package quiz

import (
	"context"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/dbtest"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

func newTestSelector(store *dbtest.Store, opts ...Option) *Selector {
	return NewSelector(
		repository.NewQuestionRepository(store),
		repository.NewCategoryRepository(store),
		zerolog.New(io.Discard),
		opts...,
	)
}

func ptr(v int64) *int64 { return &v }

func TestNextStaysInCategoryAndSkipsPrevious(t *testing.T) {
	sel := newTestSelector(dbtest.Seeded())
	previous := []int64{13, 14}

	for i := 0; i < 50; i++ {
		q, err := sel.Next(context.Background(), Request{PreviousQuestions: previous, Category: ptr(dbtest.CategoryGeography)})
		require.NoError(t, err)
		assert.Equal(t, dbtest.CategoryGeography, q.Category)
		assert.Equal(t, int64(15), q.ID, "only question 15 is left in Geography")
	}
}

func TestNextUsesInjectedRandomSource(t *testing.T) {
	var sizes []int
	sel := newTestSelector(dbtest.Seeded(), WithRandom(func(n int) int {
		sizes = append(sizes, n)
		return n - 1
	}))

	q, err := sel.Next(context.Background(), Request{PreviousQuestions: []int64{}, Category: ptr(dbtest.CategoryArt)})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, sizes)
	assert.Equal(t, int64(19), q.ID, "last Art question by id")

	q, err = sel.Next(context.Background(), Request{PreviousQuestions: []int64{19}, Category: ptr(dbtest.CategoryArt)})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, sizes)
	assert.Equal(t, int64(18), q.ID)
}

func TestNextRejectsOutOfRangeIndex(t *testing.T) {
	sel := newTestSelector(dbtest.Seeded(), WithRandom(func(n int) int { return n }))

	_, err := sel.Next(context.Background(), Request{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPoolExhausted)
}

func TestNextUnknownOrAbsentCategoryDrawsFromAll(t *testing.T) {
	store := dbtest.Seeded()
	all := store.Questions()

	for _, category := range []*int64{nil, ptr(100)} {
		seen := map[int64]bool{}
		for i := range all {
			idx := i
			sel := newTestSelector(store, WithRandom(func(n int) int {
				require.Equal(t, len(all), n)
				return idx
			}))
			q, err := sel.Next(context.Background(), Request{Category: category})
			require.NoError(t, err)
			seen[q.Category] = true
		}
		assert.Len(t, seen, 6, "every category reachable")
	}
}

func TestNextPoolExhausted(t *testing.T) {
	store := dbtest.Seeded()
	sel := newTestSelector(store)

	var previous []int64
	for _, q := range store.Questions() {
		if q.Category == dbtest.CategoryScience {
			previous = append(previous, q.ID)
		}
	}

	_, err := sel.Next(context.Background(), Request{PreviousQuestions: previous, Category: ptr(dbtest.CategoryScience)})
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestNextWalksWholeCategory(t *testing.T) {
	sel := newTestSelector(dbtest.Seeded())
	previous := []int64{}

	for {
		q, err := sel.Next(context.Background(), Request{PreviousQuestions: previous, Category: ptr(dbtest.CategoryHistory)})
		if errors.Is(err, ErrPoolExhausted) {
			break
		}
		require.NoError(t, err)
		require.False(t, slices.Contains(previous, q.ID), "question %d repeated", q.ID)
		previous = append(previous, q.ID)
	}
	assert.ElementsMatch(t, []int64{5, 9, 12, 23}, previous)
}

func TestNextStorageFailure(t *testing.T) {
	store := dbtest.Seeded()
	store.Err = errors.New("db down")
	sel := newTestSelector(store)

	_, err := sel.Next(context.Background(), Request{Category: ptr(1)})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPoolExhausted)
}
