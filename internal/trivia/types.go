package trivia

// PageSize is the fixed number of questions returned per listing page.
const PageSize = 10

// Difficulty bounds accepted for new questions.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a single trivia question as exposed to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category groups questions under a display type.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the fields needed to insert a question.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// Page is one window of an id-ordered question listing.
type Page struct {
	Questions []Question
	// Total is the size of the collection the page was drawn from.
	Total int
}

// CategoryFilter selects questions of a single category or of all categories.
// The zero value matches every category.
type CategoryFilter struct {
	id     int
	scoped bool
}

// AllCategories returns a filter matching every category.
func AllCategories() CategoryFilter {
	return CategoryFilter{}
}

// InCategory returns a filter matching only the given category.
func InCategory(id int) CategoryFilter {
	return CategoryFilter{id: id, scoped: true}
}

// CategoryID reports the filtered category, or false for all categories.
func (f CategoryFilter) CategoryID() (int, bool) {
	return f.id, f.scoped
}

// Matches reports whether q belongs to the filtered category.
func (f CategoryFilter) Matches(q Question) bool {
	return !f.scoped || q.Category == f.id
}

// CategoryMap indexes category types by id, the shape clients render.
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
