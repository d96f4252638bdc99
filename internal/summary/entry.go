package summary

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

const (
	// IndexFile is the reserved name of a directory landing page.
	IndexFile = "README.md"

	// IndexTitle is the title of the seeded root entry in tree-complete mode.
	IndexTitle = "README"

	// SummaryFile is the name of the generated index inside the base path.
	SummaryFile = "SUMMARY.md"

	// Header is written as the first line of every generated SUMMARY.md.
	Header = "# https://github.com/rust-lang-nursery/mdBook/issues/677"

	docExt    = ".md"
	indexStem = "README"
)

// Entry is one navigable node of the generated index.
type Entry struct {
	// Path is slash separated and relative to the base path.
	Path  string
	Title string
}

// components splits the entry path into its slash separated parts.
func (e Entry) components() []string {
	if e.Path == "" {
		return nil
	}
	return strings.Split(e.Path, "/")
}

// Depth is the number of directories preceding the file name.
func (e Entry) Depth() int {
	n := len(e.components())
	if n == 0 {
		return 0
	}
	return n - 1
}

// Compare orders entries by path components, then by title.
func (e Entry) Compare(other Entry) int {
	if c := slices.Compare(e.components(), other.components()); c != 0 {
		return c
	}
	return cmp.Compare(e.Title, other.Title)
}

// Line renders the entry as a SUMMARY.md list item.
func (e Entry) Line() string {
	return fmt.Sprintf("%s- [%s](%s)", strings.Repeat("  ", e.Depth()), e.Title, e.Path)
}

// SortEntries sorts entries in place by [Entry.Compare].
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, Entry.Compare)
}
