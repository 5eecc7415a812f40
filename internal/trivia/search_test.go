package trivia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCaseInsensitive(t *testing.T) {
	all := catalogQuestions()

	matches := Search(all, "TITLE")
	require.Len(t, matches, 2)
	assert.Equal(t, []int{5, 6}, ids(matches))

	matches = Search(all, "world cup")
	assert.Equal(t, []int{10, 11}, ids(matches))
}

func TestSearchEmptyTermReturnsEverything(t *testing.T) {
	all := catalogQuestions()
	assert.Equal(t, all, Search(all, ""))
}

func TestSearchNoMatchesIsEmptyNotNil(t *testing.T) {
	matches := Search(catalogQuestions(), "i32hdfuu23hgeuigdwq")
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearchContainment(t *testing.T) {
	all := catalogQuestions()
	for _, term := range []string{"which", "the", "Dutch", "z", "?", "soccer world", "xyz"} {
		matches := Search(all, term)
		matched := map[int]bool{}
		for _, q := range matches {
			matched[q.ID] = true
		}
		for _, q := range all {
			want := strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
			assert.Equal(t, want, matched[q.ID], "term %q question %d", term, q.ID)
		}
	}
}

func TestSearchKeepsIDOrder(t *testing.T) {
	matches := Search(catalogQuestions(), "what")
	got := ids(matches)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func ids(qs []Question) []int {
	out := make([]int, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}
