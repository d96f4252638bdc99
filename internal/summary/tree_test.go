package summary

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDirectory(t *testing.T) {
	fsys := NewFS(fstest.MapFS{
		"docs/README.md":               {Data: []byte("# Intro\n")},
		"docs/guide/page.md":           {Data: []byte("# Page\n")},
		"docs/guide/notes.txt":         {Data: []byte("# Not markdown\n")},
		"docs/guide/deep/more.md":      {Data: []byte("# More\n")},
		"docs/reference/README.md":     {Data: []byte("# Reference\n")},
		"docs/reference/api.md":        {Data: []byte("no title\n")},
		"docs/reference/api/nested.md": {Data: []byte("# Nested\n")},
	})
	opts := Options{Marker: "# "}

	t.Run("synthesizes missing index", func(t *testing.T) {
		out, err := HandleDirectory(fsys, "docs/guide", "docs", opts, nil)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Path: "guide/page.md", Title: "Page"},
			{Path: "guide/README.md", Title: "guide"},
		}, out)
	})

	t.Run("existing index adds no placeholder", func(t *testing.T) {
		out, err := HandleDirectory(fsys, "docs/reference", "docs", opts, nil)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Path: "reference/README.md", Title: "Reference"},
		}, out)
	})

	t.Run("appends to existing entries", func(t *testing.T) {
		seed := []Entry{{Path: "README.md", Title: "README"}}
		out, err := HandleDirectory(fsys, "docs/guide/deep", "docs", opts, seed)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Path: "README.md", Title: "README"},
			{Path: "guide/deep/more.md", Title: "More"},
			{Path: "guide/deep/README.md", Title: "deep"},
		}, out)
	})

	t.Run("base directory placeholder has empty title", func(t *testing.T) {
		bare := NewFS(fstest.MapFS{
			"docs/page.md": {Data: []byte("# Page\n")},
		})
		out, err := HandleDirectory(bare, "docs", "docs", opts, nil)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Path: "page.md", Title: "Page"},
			{Path: "README.md", Title: ""},
		}, out)
	})

	t.Run("directory name with glob metacharacters", func(t *testing.T) {
		odd := NewFS(fstest.MapFS{
			"src/a[b]/README.md": {Data: []byte("# AB\n")},
			"src/a[b]/p.md":      {Data: []byte("# P\n")},
			"src/ab/other.md":    {Data: []byte("# Other\n")},
		})
		out, err := HandleDirectory(odd, "src/a[b]", "src", opts, nil)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Path: "a[b]/README.md", Title: "AB"},
			{Path: "a[b]/p.md", Title: "P"},
		}, out)
	})

	t.Run("directory outside base path fails", func(t *testing.T) {
		_, err := HandleDirectory(fsys, "docs/guide", "elsewhere", opts, nil)
		require.Error(t, err)
	})
}
