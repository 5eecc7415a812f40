package trivia

import (
	"context"
	"slices"
	"sync"
)

func catalogCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// catalogQuestions mirrors the seeded catalog: nineteen questions, with
// category 3 holding exactly 13, 14 and 15.
func catalogQuestions() []Question {
	return []Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{ID: 4, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{ID: 6, Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{ID: 15, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{ID: 16, Question: "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
		{ID: 17, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{ID: 18, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{ID: 19, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: 2, Difficulty: 2},
		{ID: 20, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 21, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{ID: 22, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{ID: 23, Question: "Which planet in our solar system has the shortest day?", Answer: "Jupiter", Category: 1, Difficulty: 3},
	}
}

// numbered returns n questions with ids 1..n spread over three categories.
func numbered(n int) []Question {
	out := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Question{ID: i, Question: "Question", Answer: "Answer", Category: i%3 + 1, Difficulty: 1})
	}
	return out
}

// memoryCatalog is an in-memory QuestionStore and CategoryStore.
type memoryCatalog struct {
	mu         sync.Mutex
	questions  []Question
	categories []Category
	nextID     int
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		questions:  catalogQuestions(),
		categories: catalogCategories(),
		nextID:     24,
	}
}

func (m *memoryCatalog) questionStore() QuestionStore { return memoryQuestions{m} }
func (m *memoryCatalog) categoryStore() CategoryStore { return memoryCategories{m} }

type memoryQuestions struct{ m *memoryCatalog }

func (s memoryQuestions) List(context.Context) ([]Question, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return slices.Clone(s.m.questions), nil
}

func (s memoryQuestions) ListByCategory(_ context.Context, categoryID int) ([]Question, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := []Question{}
	for _, q := range s.m.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s memoryQuestions) Create(_ context.Context, q NewQuestion) (int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	id := s.m.nextID
	s.m.nextID++
	s.m.questions = append(s.m.questions, Question{
		ID:         id,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	})
	return id, nil
}

func (s memoryQuestions) Delete(_ context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, q := range s.m.questions {
		if q.ID == id {
			s.m.questions = slices.Delete(s.m.questions, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

type memoryCategories struct{ m *memoryCatalog }

func (s memoryCategories) List(context.Context) ([]Category, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return slices.Clone(s.m.categories), nil
}

func (s memoryCategories) Get(_ context.Context, id int) (Category, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}
