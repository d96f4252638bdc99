package summary

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
)

// Mode selects how the document tree is traversed.
type Mode string

const (
	// ModeFlat visits every document under the base path directly.
	ModeFlat Mode = "flat-scan"
	// ModeTree visits every directory and synthesizes missing index entries.
	ModeTree Mode = "tree-complete"
)

// Config holds the settings of a single run.
type Config struct {
	// BasePath is the documentation root to scan.
	BasePath string
	// Verbose echoes every written line to Echo.
	Verbose bool
	// TrimStr is the title marker used when reading document content.
	TrimStr string
	// TitleFromName derives titles from file names instead of content.
	TitleFromName bool
	// CreateReadmes enables tree-complete mode.
	CreateReadmes bool

	// Echo receives verbose output. Defaults to os.Stdout.
	Echo io.Writer
	// Logger receives diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger
	// FS overrides the filesystem. Defaults to OS().
	FS FileSystem
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		BasePath: "src/",
		TrimStr:  "# ",
	}
}

// Mode returns the traversal mode selected by the configuration.
func (c Config) Mode() Mode {
	if c.CreateReadmes {
		return ModeTree
	}
	return ModeFlat
}

// Options returns the title options of the configuration.
func (c Config) Options() Options {
	return Options{Marker: c.TrimStr, TitleFromName: c.TitleFromName}
}

// base returns the cleaned, slash separated base path.
func (c Config) base() string {
	return path.Clean(filepath.ToSlash(c.BasePath))
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c Config) fs() FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return OS()
}

// Validate reports configuration values that cannot produce a summary.
func (c Config) Validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("base path is required")
	}
	return nil
}
