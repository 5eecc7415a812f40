package trivia

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

// QuestionStore is the persistence contract for questions. Listings are
// ordered by id ascending.
type QuestionStore interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Create(ctx context.Context, q NewQuestion) (int, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (Category, error)
}

// Listing is a page of questions plus the category catalog.
type Listing struct {
	Page       Page
	Categories []Category
}

// CategoryQuestions holds every question of one category.
type CategoryQuestions struct {
	Category  Category
	Questions []Question
}

type newQuestionInput struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   int    `validate:"required,gt=0,lte=2147483647"`
	Difficulty int    `validate:"required,min=1,max=5"`
}

// Service runs listing, search, authoring and quiz flows over the stores.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	selector   *Selector
	validate   *validator.Validate
}

// ServiceOptions tunes optional Service collaborators.
type ServiceOptions struct {
	// Selector overrides the random quiz selector.
	Selector *Selector
}

// NewService builds a Service over the given stores.
func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions) *Service {
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector()
	}
	return &Service{
		questions:  questions,
		categories: categories,
		selector:   selector,
		validate:   validator.New(),
	}
}

// ListCategories returns every category ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListQuestions returns the requested page of all questions.
func (s *Service) ListQuestions(ctx context.Context, page int) (Listing, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("list questions: %w", err)
	}

	p, err := Paginate(all, page)
	if err != nil {
		return Listing{}, err
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return Listing{}, err
	}

	return Listing{Page: p, Categories: categories}, nil
}

// QuestionsByCategory returns every question of an existing category.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) (CategoryQuestions, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list category %d questions: %w", categoryID, err)
	}

	return CategoryQuestions{Category: category, Questions: questions}, nil
}

// SearchQuestions returns every question whose text contains term.
func (s *Service) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return Search(all, term), nil
}

// CreateQuestion validates q and stores it, returning the new id.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) (int, error) {
	input := newQuestionInput(q)
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	id, err := s.questions.Create(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}

	logger := logging.FromContext(ctx)
	logger.Info().Int("question_id", id).Int("category", q.Category).Msg("question created")
	return id, nil
}

// DeleteQuestion removes a question and returns its id.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if err := s.questions.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}

	logger := logging.FromContext(ctx)
	logger.Info().Int("question_id", id).Msg("question deleted")
	return id, nil
}

// NextQuizQuestion picks an unseen question for filter. A nil question with a
// nil error means the session has exhausted the pool.
func (s *Service) NextQuizQuestion(ctx context.Context, filter CategoryFilter, previous []int) (*Question, error) {
	pool, err := s.quizPool(ctx, filter)
	if err != nil {
		return nil, err
	}

	q, ok := s.selector.Next(pool, filter, previous)
	if !ok {
		metrics.QuizSelections.WithLabelValues(metrics.OutcomeExhausted).Inc()
		return nil, nil
	}
	metrics.QuizSelections.WithLabelValues(metrics.OutcomeQuestion).Inc()
	return q, nil
}

func (s *Service) quizPool(ctx context.Context, filter CategoryFilter) ([]Question, error) {
	categoryID, scoped := filter.CategoryID()
	if !scoped {
		pool, err := s.questions.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("load quiz pool: %w", err)
		}
		return pool, nil
	}

	// An unknown category yields an empty pool, not an error.
	pool, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load quiz pool for category %d: %w", categoryID, err)
	}
	return pool, nil
}
