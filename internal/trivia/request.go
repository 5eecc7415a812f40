package trivia

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingQuizCategory is returned when a quiz request names no category.
var ErrMissingQuizCategory = errors.New("quiz_category is required")

// QuestionsPostRequest is the body of POST /questions. Exactly one variant is
// set: Search when the body carries a searchTerm key, Create otherwise.
type QuestionsPostRequest struct {
	Search *SearchRequest
	Create *CreateQuestionRequest
}

// SearchRequest asks for every question containing Term.
type SearchRequest struct {
	Term string `json:"searchTerm"`
}

// CreateQuestionRequest asks for a new question to be stored.
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// UnmarshalJSON picks the request variant.
func (r *QuestionsPostRequest) UnmarshalJSON(data []byte) error {
	var probe struct {
		SearchTerm *string `json:"searchTerm"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.SearchTerm != nil {
		*r = QuestionsPostRequest{Search: &SearchRequest{Term: *probe.SearchTerm}}
		return nil
	}

	var create CreateQuestionRequest
	if err := json.Unmarshal(data, &create); err != nil {
		return err
	}
	*r = QuestionsPostRequest{Create: &create}
	return nil
}

// UnmarshalJSON accepts category and difficulty as numbers or numeric strings,
// since form-driven clients send the selected option value as a string. Field
// values of the wrong type are reported as ErrInvalidQuestion.
func (c *CreateQuestionRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question   string          `json:"question"`
		Answer     string          `json:"answer"`
		Category   json.RawMessage `json:"category"`
		Difficulty json.RawMessage `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	category, err := looseInt(raw.Category)
	if err != nil {
		return fmt.Errorf("%w: category: %v", ErrInvalidQuestion, err)
	}
	difficulty, err := looseInt(raw.Difficulty)
	if err != nil {
		return fmt.Errorf("%w: difficulty: %v", ErrInvalidQuestion, err)
	}

	*c = CreateQuestionRequest{
		Question:   raw.Question,
		Answer:     raw.Answer,
		Category:   category,
		Difficulty: difficulty,
	}
	return nil
}

// NewQuestion converts the request into the service input.
func (c CreateQuestionRequest) NewQuestion() NewQuestion {
	return NewQuestion{
		Question:   c.Question,
		Answer:     c.Answer,
		Category:   c.Category,
		Difficulty: c.Difficulty,
	}
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []int           `json:"previous_questions"`
	QuizCategory      *CategoryFilter `json:"quiz_category"`
}

// Validate rejects requests without a category.
func (q QuizRequest) Validate() error {
	if q.QuizCategory == nil {
		return ErrMissingQuizCategory
	}
	return nil
}

// UnmarshalJSON reads a category id, either bare or as {"id": ..., "type": ...}.
// Id 0 means all categories.
func (f *CategoryFilter) UnmarshalJSON(data []byte) error {
	var id int
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 {
			return errors.New("quiz_category.id is required")
		}
		parsed, err := looseInt(obj.ID)
		if err != nil {
			return fmt.Errorf("quiz_category.id: %w", err)
		}
		id = parsed
	} else if err := json.Unmarshal(trimmed, &id); err != nil {
		return fmt.Errorf("quiz_category: %w", err)
	}

	switch {
	case id < 0:
		return fmt.Errorf("quiz_category: invalid id %d", id)
	case id == 0:
		*f = AllCategories()
	default:
		*f = InCategory(id)
	}
	return nil
}

// looseInt decodes a JSON number or a numeric string. Absent and null values
// decode to 0.
func looseInt(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n, nil
}
