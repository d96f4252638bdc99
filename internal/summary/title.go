package summary

import (
	"bufio"
	"strings"
)

// Options controls how titles are derived.
type Options struct {
	// Marker prefixes the title-bearing line of a document, e.g. "# ".
	Marker string
	// TitleFromName derives every title from the file name and never reads
	// document content.
	TitleFromName bool
}

// ExtractTitle returns the remainder of the first line of the document that,
// once trimmed, starts with marker. Every leading repeat of the marker is
// removed. Unreadable documents and documents without such a line yield no
// title.
func ExtractTitle(fsys FileSystem, p, marker string) (string, bool) {
	f, err := fsys.Open(p)
	if err != nil {
		return "", false
	}
	defer f.Close()

	// Lines have no length limit, unlike bufio.Scanner.
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			return "", false
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			return trimMarker(trimmed, marker), true
		}
		if err != nil {
			return "", false
		}
	}
}

// trimMarker strips every leading occurrence of marker from s.
func trimMarker(s, marker string) string {
	if marker == "" {
		return s
	}
	for strings.HasPrefix(s, marker) {
		s = s[len(marker):]
	}
	return s
}

// FindEntry builds the entry for the document at p. ok is false when no title
// could be resolved; err is only set when p is not under basePath.
func FindEntry(fsys FileSystem, p, basePath string, opts Options) (entry Entry, ok bool, err error) {
	var title string
	if opts.TitleFromName {
		title = TitleFromFilename(p)
	} else {
		title, ok = ExtractTitle(fsys, p, opts.Marker)
		if !ok {
			return Entry{}, false, nil
		}
	}
	if title == "" {
		return Entry{}, false, nil
	}

	rel, err := RelativePath(p, basePath)
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Path: rel, Title: title}, true, nil
}
