package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

const foreignKeyViolation = "23503"

type questionStore interface {
	ListQuestions(ctx context.Context) ([]queries.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]queries.Question, error)
	InsertQuestion(ctx context.Context, arg queries.InsertQuestionParams) (int32, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
}

// QuestionRepository exposes the question table as domain values.
type QuestionRepository struct {
	store questionStore
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// ListByCategory returns the questions of one category ordered by id. Unknown
// categories yield an empty slice.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	category, ok := toID(categoryID)
	if !ok {
		return []trivia.Question{}, nil
	}
	rows, err := r.store.ListQuestionsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// Create inserts a question and returns its id.
func (r *QuestionRepository) Create(ctx context.Context, q trivia.NewQuestion) (int, error) {
	category, ok := toID(q.Category)
	if !ok {
		return 0, fmt.Errorf("%w: category %d does not exist", trivia.ErrInvalidQuestion, q.Category)
	}
	difficulty, ok := toID(q.Difficulty)
	if !ok {
		return 0, fmt.Errorf("%w: difficulty %d out of range", trivia.ErrInvalidQuestion, q.Difficulty)
	}
	id, err := r.store.InsertQuestion(ctx, queries.InsertQuestionParams{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return 0, fmt.Errorf("%w: category %d does not exist", trivia.ErrInvalidQuestion, q.Category)
		}
		return 0, err
	}
	return int(id), nil
}

// Delete removes a question, returning trivia.ErrNotFound when nothing matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	key, ok := toID(id)
	if !ok {
		return trivia.ErrNotFound
	}
	affected, err := r.store.DeleteQuestion(ctx, key)
	if err != nil {
		return err
	}
	if affected == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

func toQuestions(rows []queries.Question) []trivia.Question {
	out := make([]trivia.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, trivia.Question{
			ID:         int(row.ID),
			Question:   row.Question,
			Answer:     row.Answer,
			Category:   int(row.Category),
			Difficulty: int(row.Difficulty),
		})
	}
	return out
}

// toID narrows n to the int32 column type, reporting false when it does not fit.
func toID(n int) (int32, bool) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}
