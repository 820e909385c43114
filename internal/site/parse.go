// Package site models the input tree: documents, categories and the
// filename conventions that order them.
package site

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// UnorderedIndex is the ordering index assigned to files without a numeric
// prefix. It sorts after every explicit index.
const UnorderedIndex = 999999

var orderedName = regexp.MustCompile(`^(\d+)[-._](.+)$`)

// ParseFileName extracts an ordering index and a display title from a
// filename. A leading "<digits><-._>" prefix becomes the index and is
// stripped from the title; otherwise the index is UnorderedIndex. The final
// extension is stripped from the title in both cases. Every filename
// produces a result.
func ParseFileName(name string) (int, string) {
	index, title := UnorderedIndex, name
	if m := orderedName.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			index, title = n, m[2]
		}
	}
	return index, strings.TrimSuffix(title, filepath.Ext(title))
}
