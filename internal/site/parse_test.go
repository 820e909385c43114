package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileName(t *testing.T) {
	cases := []struct {
		name  string
		index int
		title string
	}{
		{"03-intro.md", 3, "intro"},
		{"notes.md", UnorderedIndex, "notes"},
		{"10_a.b.md", 10, "a.b"},
		{"05.setup.md", 5, "setup"},
		{"2-guides", 2, "guides"},
		{"assets", UnorderedIndex, "assets"},
		{"logo.png", UnorderedIndex, "logo"},
		{"2023.md", 2023, "md"},
	}

	for _, tc := range cases {
		index, title := ParseFileName(tc.name)
		assert.Equal(t, tc.index, index, "index of %q", tc.name)
		assert.Equal(t, tc.title, title, "title of %q", tc.name)
	}
}

// A numeric prefix too large for an int falls back to the unordered
// sentinel; filename parsing has no error condition.
func TestParseFileNameOverflowingPrefix(t *testing.T) {
	index, title := ParseFileName("99999999999999999999-big.md")
	assert.Equal(t, UnorderedIndex, index)
	assert.Equal(t, "99999999999999999999-big", title)
}

func TestUnorderedSortsAfterExplicitIndexes(t *testing.T) {
	index, _ := ParseFileName("999-last-explicit.md")
	assert.Less(t, index, UnorderedIndex)
}
