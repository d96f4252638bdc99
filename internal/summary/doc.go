// Package summary builds an mdBook SUMMARY.md navigation index from a tree of
// Markdown documents.
//
// # Overview
//
// Every document under a root directory becomes an [Entry]: a path relative to
// the root and a display title. Titles come either from the file name or from
// the first content line that starts with a marker such as "# ".
//
// Two traversal modes are supported:
//
//   - Flat scan: every *.md file under the root is visited directly.
//
//   - Tree completion: every directory is visited and a placeholder
//     README.md entry is synthesized for directories that lack one, so the
//     rendered navigation has no holes.
//
// Entries are sorted by path components and rendered as nested list items.
//
// # Usage
//
//	cfg := summary.DefaultConfig()
//	cfg.BasePath = "docs"
//	report, err := summary.Generate(cfg)
//
// Directory listing and file reads go through a [FileSystem], so the
// collection logic runs equally against the disk ([OS]) or any fs.FS
// ([NewFS]).
package summary
