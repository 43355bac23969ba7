// Package locator finds note files under a notes directory by matching their
// base names against a shell-style glob pattern.
package locator

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Paintersrp/noman/internal/constants"
	"github.com/Paintersrp/noman/internal/logging"
)

// Locator walks a notes directory tree collecting matching note files.
type Locator struct {
	fs     afero.Fs
	logger *slog.Logger
}

// New returns a Locator reading from fs. A nil logger discards output.
func New(fs afero.Fs, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Locator{fs: fs, logger: logger}
}

// Pattern derives the glob used to look up topic. Wildcards in topic are
// kept as wildcards; see Match for their meaning.
func Pattern(topic string) string {
	return "*" + topic + "*" + constants.NoteExt
}

// Find returns the full paths of every regular file below root whose base
// name matches pattern, in directory enumeration order. Subdirectories are
// only entered when recursive is set. Directories that cannot be read
// contribute no matches.
func (l *Locator) Find(root, pattern string, recursive bool) []string {
	var matches []string
	l.walk(root, pattern, recursive, &matches)
	return matches
}

func (l *Locator) walk(dir, pattern string, recursive bool, matches *[]string) {
	entries, err := l.readDir(dir)
	if err != nil {
		l.logger.Debug("skipping directory", "dir", dir, "err", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		path := filepath.Join(dir, name)
		mode := entry.Mode()

		switch {
		case mode.IsRegular():
			if Match(pattern, name) {
				*matches = append(*matches, path)
			}
		case mode.IsDir():
			if recursive {
				l.walk(path, pattern, recursive, matches)
			}
		}
	}
}

// readDir lists dir without following symbolic links and releases the
// directory handle before returning.
func (l *Locator) readDir(dir string) ([]os.FileInfo, error) {
	f, err := l.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdir(-1)
}
