package sqlcgen

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const countQuestions = `-- name: CountQuestions :one
SELECT count(*) FROM questions
`

func (q *Queries) CountQuestions(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countQuestions)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteQuestion = `-- name: DeleteQuestion :execrows
DELETE FROM questions
WHERE id = $1
`

func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertQuestion = `-- name: InsertQuestion :one
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty
`

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, insertQuestion,
		arg.Question,
		arg.Answer,
		arg.Category,
		arg.Difficulty,
	)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.Question,
		&i.Answer,
		&i.Category,
		&i.Difficulty,
	)
	return i, err
}

const listQuestionsByCategory = `-- name: ListQuestionsByCategory :many
SELECT id, question, answer, category, difficulty FROM questions
WHERE category = $1
ORDER BY id
`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, category int64) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, category)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

const listQuestionsPage = `-- name: ListQuestionsPage :many
SELECT id, question, answer, category, difficulty FROM questions
ORDER BY id
LIMIT $1 OFFSET $2
`

type ListQuestionsPageParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListQuestionsPage(ctx context.Context, arg ListQuestionsPageParams) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsPage, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

const listQuizCandidates = `-- name: ListQuizCandidates :many
SELECT id, question, answer, category, difficulty FROM questions
WHERE ($1::bigint IS NULL OR category = $1)
  AND NOT (id = ANY($2::bigint[]))
ORDER BY id
`

type ListQuizCandidatesParams struct {
	Category pgtype.Int8
	Exclude  []int64
}

func (q *Queries) ListQuizCandidates(ctx context.Context, arg ListQuizCandidatesParams) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuizCandidates, arg.Category, arg.Exclude)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

const searchQuestions = `-- name: SearchQuestions :many
SELECT id, question, answer, category, difficulty FROM questions
WHERE question ILIKE $1::text
ORDER BY id
`

func (q *Queries) SearchQuestions(ctx context.Context, pattern string) ([]Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, pattern)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func scanQuestions(rows pgx.Rows) ([]Question, error) {
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
			&i.Category,
			&i.Difficulty,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
