package trivia

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a missing question, category or page.
	ErrNotFound = errors.New("resource not found")
	// ErrPageOutOfRange is returned when a page window holds no questions.
	ErrPageOutOfRange = fmt.Errorf("page out of range: %w", ErrNotFound)
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrInvalidQuestion is returned when a new question fails validation.
	ErrInvalidQuestion = errors.New("invalid question")
)
