package summary

import (
	"fmt"
	"path"
)

// Collect gathers the unsorted entries of the tree rooted at cfg.BasePath.
//
// In tree-complete mode the root index entry is seeded first and owns the
// root README.md: documents or placeholders at that path are not added again.
// The generated SUMMARY.md is never collected.
func Collect(cfg Config) ([]Entry, error) {
	fsys := cfg.fs()
	base := cfg.base()
	literal := escapeMeta(base)
	log := cfg.logger()
	opts := cfg.Options()

	if cfg.Mode() == ModeFlat {
		docs, err := fsys.Glob(path.Join(literal, "**", "*"+docExt))
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		var entries []Entry
		for _, doc := range docs {
			entry, ok, err := FindEntry(fsys, doc, base, opts)
			if err != nil {
				return nil, err
			}
			if !ok {
				log.Debug("skipping document without title", "path", doc)
				continue
			}
			if entry.Path == SummaryFile {
				continue
			}
			entries = append(entries, entry)
		}
		return entries, nil
	}

	root := Entry{Path: IndexFile, Title: IndexTitle}
	entries := []Entry{root}

	dirs, err := fsys.Glob(path.Join(literal, "**") + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to list directories: %w", err)
	}
	for _, dir := range dirs {
		found, err := HandleDirectory(fsys, dir, base, opts, nil)
		if err != nil {
			return nil, err
		}
		for _, entry := range found {
			if entry.Path == root.Path || entry.Path == SummaryFile {
				continue
			}
			log.Debug("collected entry", "path", entry.Path, "title", entry.Title)
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
