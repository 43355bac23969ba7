// Package viewer writes a resolved note to an output stream.
package viewer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Clipboard receives a copy of the displayed note.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the clipboard of the host desktop session.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

type Options struct {
	// Render formats Markdown with glamour instead of copying raw bytes.
	Render   bool
	Style    string
	WordWrap int
	Profile  termenv.Profile
	// Copy also places the raw note on the clipboard.
	Copy bool
}

// OpenError reports a note that could not be opened or read after it was
// resolved.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not read note %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

type Viewer struct {
	fs   afero.Fs
	opts Options
	clip Clipboard
}

func New(fs afero.Fs, opts Options, clip Clipboard) *Viewer {
	if clip == nil {
		clip = SystemClipboard()
	}
	return &Viewer{fs: fs, opts: opts, clip: clip}
}

// Show opens the note at path and writes it to w.
func (v *Viewer) Show(w io.Writer, path string) error {
	f, err := v.fs.Open(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	if !v.opts.Render && !v.opts.Copy {
		if err := View(w, f); err != nil {
			return fmt.Errorf("failed to write note %q: %w", path, err)
		}
		return nil
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}

	out := content
	if v.opts.Render {
		rendered, err := v.render(content)
		if err != nil {
			return fmt.Errorf("failed to render note %q: %w", path, err)
		}
		out = []byte(rendered)
	}

	if err := View(w, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("failed to write note %q: %w", path, err)
	}

	if v.opts.Copy {
		if err := v.clip.WriteAll(string(content)); err != nil {
			return fmt.Errorf("failed to copy note to clipboard: %w", err)
		}
	}

	return nil
}

func (v *Viewer) render(content []byte) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(v.opts.Style),
		glamour.WithWordWrap(v.opts.WordWrap),
		glamour.WithColorProfile(v.opts.Profile),
	)
	if err != nil {
		return "", err
	}

	return r.Render(string(content))
}

// View copies r to w verbatim through a buffer.
func View(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	if _, err := io.Copy(bw, r); err != nil {
		return err
	}
	return bw.Flush()
}

// TerminalWidth returns the column count of w when it is a terminal, or
// fallback otherwise.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// ColorProfile reports the colour support of w, honouring NO_COLOR and
// CLICOLOR_FORCE.
func ColorProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}
