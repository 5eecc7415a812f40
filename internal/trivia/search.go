package trivia

import "strings"

// Search returns the questions whose text contains term, ignoring case, in
// their original order. An empty term matches everything.
func Search(all []Question, term string) []Question {
	needle := strings.ToLower(term)
	matches := make([]Question, 0, len(all))
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}
