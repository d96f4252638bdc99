package summary

import (
	"path"
)

// HandleDirectory appends an entry for every document directly inside dir.
// When dir has no index document a placeholder entry is appended as well,
// titled after the directory. For the base directory itself that title is
// the empty string.
func HandleDirectory(fsys FileSystem, dir, basePath string, opts Options, out []Entry) ([]Entry, error) {
	literal := escapeMeta(dir)
	docs, err := fsys.Glob(path.Join(literal, "*"+docExt))
	if err != nil {
		return out, err
	}
	for _, doc := range docs {
		entry, ok, err := FindEntry(fsys, doc, basePath, opts)
		if err != nil {
			return out, err
		}
		if ok {
			out = append(out, entry)
		}
	}

	index, err := fsys.Glob(path.Join(literal, IndexFile))
	if err != nil {
		return out, err
	}
	if len(index) > 0 {
		return out, nil
	}

	rel, err := RelativePath(dir, basePath)
	if err != nil {
		return out, err
	}
	title := ""
	if rel != "" {
		title = path.Base(rel)
	}
	return append(out, Entry{Path: path.Join(rel, IndexFile), Title: title}), nil
}
