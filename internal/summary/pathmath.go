package summary

import (
	"fmt"
	"path"
	"strings"
)

// NotABasePathError reports a path that does not live under the configured
// base path. It signals a configuration mistake and aborts the run.
type NotABasePathError struct {
	Path     string
	BasePath string
}

func (e *NotABasePathError) Error() string {
	return fmt.Sprintf("given a base path that is not actually a base path: %q is not under %q", e.Path, e.BasePath)
}

// RelativePath strips basePath from p, comparing whole path components.
// Both arguments are slash separated. RelativePath(base, base) is "".
func RelativePath(p, basePath string) (string, error) {
	cleanPath := path.Clean(p)
	cleanBase := path.Clean(basePath)

	if cleanBase == "." {
		if cleanPath == "." {
			return "", nil
		}
		if path.IsAbs(cleanPath) || cleanPath == ".." || strings.HasPrefix(cleanPath, "../") {
			return "", &NotABasePathError{Path: p, BasePath: basePath}
		}
		return cleanPath, nil
	}

	if cleanPath == cleanBase {
		return "", nil
	}

	prefix := cleanBase
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	rel, ok := strings.CutPrefix(cleanPath, prefix)
	if !ok {
		return "", &NotABasePathError{Path: p, BasePath: basePath}
	}
	return rel, nil
}

// TitleFromFilename returns the file stem of p. Index documents are titled
// after their parent directory instead.
func TitleFromFilename(p string) string {
	stem := fileStem(path.Base(p))
	if stem != indexStem {
		return stem
	}
	parent := path.Base(path.Dir(p))
	if parent == "." || parent == "/" {
		return stem
	}
	return parent
}

// fileStem drops the extension of name. A dotfile without another dot, such
// as ".md", is its own stem.
func fileStem(name string) string {
	ext := path.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
