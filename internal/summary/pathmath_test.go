package summary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		base     string
		expected string
		wantErr  bool
	}{
		{"nested document", "src/guide/page.md", "src", "guide/page.md", false},
		{"trailing slash on base", "src/README.md", "src/", "README.md", false},
		{"base itself", "src", "src/", "", false},
		{"absolute paths", "/docs/a/b.md", "/docs", "a/b.md", false},
		{"current directory base", "guide/page.md", ".", "guide/page.md", false},
		{"current directory itself", ".", ".", "", false},
		{"not a prefix", "other/page.md", "src", "", true},
		{"partial component", "src2/page.md", "src", "", true},
		{"climbs out of current directory", "../page.md", ".", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RelativePath(tt.path, tt.base)
			if tt.wantErr {
				var notBase *NotABasePathError
				require.Error(t, err)
				require.True(t, errors.As(err, &notBase), "expected NotABasePathError, got %T", err)
				assert.Equal(t, tt.path, notBase.Path)
				assert.Equal(t, tt.base, notBase.BasePath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain document", "src/guide/getting-started.md", "getting-started"},
		{"index document uses directory", "src/guide/README.md", "guide"},
		{"root index uses base directory", "src/README.md", "src"},
		{"index without directory", "README.md", "README"},
		{"other extension", "src/guide/README.pdf", "guide"},
		{"readme in lowercase is not an index", "src/guide/readme.md", "readme"},
		{"dotfile is its own stem", "src/guide/.md", ".md"},
		{"dotfile with extension", "src/guide/.draft.md", ".draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleFromFilename(tt.input))
		})
	}
}
