package summary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Report describes a completed run.
type Report struct {
	// Path is the written SUMMARY.md.
	Path string
	Mode Mode
	// Entries is the number of rendered entries.
	Entries int
	// Synthesized counts placeholder entries for missing index documents.
	Synthesized int
}

// Generate collects the entries under cfg.BasePath and writes SUMMARY.md into
// it. Any failure aborts the run; a partially written file may remain.
func Generate(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := cfg.base()

	info, err := os.Stat(filepath.FromSlash(base))
	if err != nil {
		return nil, fmt.Errorf("base path %s: %w", cfg.BasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base path %s is not a directory", cfg.BasePath)
	}

	entries, err := Collect(cfg)
	if err != nil {
		return nil, err
	}

	out := filepath.FromSlash(path.Join(base, SummaryFile))
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", SummaryFile, err)
	}

	buf := bufio.NewWriter(f)
	var echo io.Writer
	if cfg.Verbose {
		echo = cfg.Echo
		if echo == nil {
			echo = os.Stdout
		}
	}

	err = Render(NewLineWriter(buf, echo), entries)
	if err == nil {
		err = buf.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("unable to write %s: %w", out, err)
	}

	report := &Report{
		Path:    out,
		Mode:    cfg.Mode(),
		Entries: len(entries),
	}
	if report.Mode == ModeTree {
		report.Synthesized = countSynthesized(cfg.fs(), base, entries)
	}
	cfg.logger().Info("summary written", "path", out, "entries", report.Entries, "mode", report.Mode)
	return report, nil
}

// countSynthesized counts entries pointing at index documents missing on disk.
func countSynthesized(fsys FileSystem, base string, entries []Entry) int {
	n := 0
	for _, e := range entries {
		if path.Base(e.Path) != IndexFile {
			continue
		}
		f, err := fsys.Open(path.Join(base, e.Path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				n++
			}
			continue
		}
		f.Close()
	}
	return n
}
