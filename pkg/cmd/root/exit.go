package root

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/noman/internal/config"
	"github.com/Paintersrp/noman/internal/resolve"
	"github.com/Paintersrp/noman/internal/state"
	"github.com/Paintersrp/noman/internal/viewer"
)

// Exit codes, one per failure category.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitConfig       = 2
	ExitRootNotFound = 3
	ExitNoMatch      = 4
	ExitAmbiguous    = 5
	ExitOpen         = 6
)

func ExitCode(err error) int {
	var (
		cfgErr  *config.Error
		rootErr *state.RootNotFoundError
		openErr *viewer.OpenError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.As(err, &rootErr):
		return ExitRootNotFound
	case errors.Is(err, resolve.ErrNoMatch):
		return ExitNoMatch
	case errors.Is(err, resolve.ErrMultipleMatches):
		return ExitAmbiguous
	case errors.As(err, &openErr):
		return ExitOpen
	default:
		return ExitFailure
	}
}

// PrintError writes err to w as a single line, coloured when w is a terminal.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	label := lipgloss.NewRenderer(w).
		NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Render("error:")

	fmt.Fprintf(w, "%s %s\n", label, err)
}
