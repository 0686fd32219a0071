package question

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/dbtest"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

func newTestService(store *dbtest.Store) *Service {
	return NewService(
		repository.NewQuestionRepository(store),
		repository.NewCategoryRepository(store),
		zerolog.New(io.Discard),
	)
}
