package question

import sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"

// PageSize is the fixed number of questions per listing page.
const PageSize = 10

// DefaultDifficulty applies when a new question omits difficulty.
const DefaultDifficulty int32 = 1

// Question is the client-facing question payload.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// Category is a labeled grouping of questions.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Page is one pagination window of the question listing.
type Page struct {
	Questions       []Question
	Total           int64
	Categories      []Category
	CurrentCategory *Category
}

// SearchResult holds every question matching a search term.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryResult holds every question filed under one category id.
type CategoryResult struct {
	Questions       []Question
	Total           int
	CurrentCategory int64
}

// CreateRequest carries the fields of a new question.
type CreateRequest struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

// FromRow converts a stored question into its API shape.
func FromRow(row sqlcgen.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

func fromRows(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out
}

func categoriesFromRows(rows []sqlcgen.Category) []Category {
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: row.ID, Type: row.Type})
	}
	return out
}
