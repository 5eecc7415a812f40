package queries

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const listCategories = `
SELECT id, type
FROM categories
ORDER BY id
`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Category])
}

const getCategory = `
SELECT id, type
FROM categories
WHERE id = $1
`

// GetCategory returns pgx.ErrNoRows when the category does not exist.
func (q *Queries) GetCategory(ctx context.Context, id int32) (Category, error) {
	var c Category
	err := q.db.QueryRow(ctx, getCategory, id).Scan(&c.ID, &c.Type)
	return c, err
}

const listQuestions = `
SELECT id, question, answer, category, difficulty
FROM questions
ORDER BY id
`

func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

const listQuestionsByCategory = `
SELECT id, question, answer, category, difficulty
FROM questions
WHERE category = $1
ORDER BY id
`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, category int32) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, category)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

const insertQuestion = `
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (int32, error) {
	var id int32
	err := q.db.QueryRow(ctx, insertQuestion,
		arg.Question,
		arg.Answer,
		arg.Category,
		arg.Difficulty,
	).Scan(&id)
	return id, err
}

const deleteQuestion = `
DELETE FROM questions
WHERE id = $1
`

// DeleteQuestion returns the number of rows removed.
func (q *Queries) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
