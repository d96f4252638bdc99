package summary

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileSystem lists paths matching glob patterns and opens documents.
// All paths are slash separated.
//
// Patterns follow doublestar syntax. A pattern ending in "/" matches
// directories only; with "**" the directory at the pattern base is
// included as well.
type FileSystem interface {
	Glob(pattern string) ([]string, error)
	Open(name string) (fs.File, error)
}

// escapeMeta backslash-escapes glob metacharacters so p matches literally
// when used as part of a pattern.
func escapeMeta(p string) string {
	var b strings.Builder
	for _, r := range p {
		switch r {
		case '\\', '*', '?', '[', ']', '{', '}':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// globFS implements FileSystem on top of fs.FS roots.
type globFS struct {
	// root returns a filesystem rooted at dir.
	root func(dir string) (fs.FS, error)
	open func(name string) (fs.File, error)
}

// OS returns a FileSystem backed by the local disk.
func OS() FileSystem {
	return &globFS{
		root: func(dir string) (fs.FS, error) {
			return os.DirFS(filepath.FromSlash(dir)), nil
		},
		open: func(name string) (fs.File, error) {
			return os.Open(filepath.FromSlash(name))
		},
	}
}

// NewFS returns a FileSystem backed by fsys. Paths are interpreted the way
// fs.FS does: unrooted, with "." naming the top.
func NewFS(fsys fs.FS) FileSystem {
	return &globFS{
		root: func(dir string) (fs.FS, error) {
			return fs.Sub(fsys, dir)
		},
		open: fsys.Open,
	}
}

// Open opens the named document for reading.
func (g *globFS) Open(name string) (fs.File, error) {
	return g.open(name)
}

// Glob returns the paths matching pattern in lexical walk order.
func (g *globFS) Glob(pattern string) ([]string, error) {
	dirsOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.TrimRight(pattern, "/")

	base, rest := doublestar.SplitPattern(pattern)
	if !doublestar.ValidatePattern(rest) {
		return nil, fmt.Errorf("glob %q: %w", pattern, doublestar.ErrBadPattern)
	}

	root, err := g.root(base)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	info, err := fs.Stat(root, ".")
	if err != nil || !info.IsDir() {
		// A missing base matches nothing.
		return nil, nil
	}

	var matches []string
	if dirsOnly && strings.Contains(rest, "**") {
		matches = append(matches, base)
	}

	err = doublestar.GlobWalk(root, rest, func(p string, d fs.DirEntry) error {
		if p == "." {
			return nil
		}
		if dirsOnly && !d.IsDir() {
			return nil
		}
		matches = append(matches, path.Join(base, p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return matches, nil
}
