package listkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/extkit/extkit/pkg/listkit"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, listkit.Equal([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, listkit.Equal([]int{1, 2, 3}, []int{3, 2, 1}))
	assert.False(t, listkit.Equal([]int{1, 2}, []int{1, 2, 3}))
	assert.True(t, listkit.Equal(nil, []int{}))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	eq := func(a, b string) bool { return strings.EqualFold(a, b) }
	assert.True(t, listkit.EqualFunc([]string{"Go", "RUST"}, []string{"go", "rust"}, eq))
	assert.False(t, listkit.EqualFunc([]string{"Go"}, []string{"C"}, eq))
}

func TestDedup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "keeps first occurrence order",
			input:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "no duplicates",
			input:    []string{"x", "y"},
			expected: []string{"x", "y"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, listkit.Dedup(tt.input))
		})
	}
}

func TestDedupFunc(t *testing.T) {
	t.Parallel()

	type user struct {
		ID   string
		Name string
	}

	users := []user{
		{ID: "1", Name: "first"},
		{ID: "2", Name: "second"},
		{ID: "1", Name: "duplicate"},
	}

	got := listkit.DedupFunc(users, func(u user) string { return u.ID })
	assert.Equal(t, []user{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}, got)
}
