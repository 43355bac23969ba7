// Package resolve decides which note, if any, a search result names.
package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Outcome classifies a search result by the number of matches it holds.
type Outcome int

const (
	NoMatch Outcome = iota
	SingleMatch
	MultipleMatches
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no-match"
	case SingleMatch:
		return "single-match"
	case MultipleMatches:
		return "multiple-matches"
	default:
		return "unknown"
	}
}

var (
	ErrNoMatch         = errors.New("no notes found")
	ErrMultipleMatches = errors.New("multiple notes found")
)

// AmbiguousError is returned when more than one note matches. It keeps the
// candidate paths so the user can narrow the topic.
type AmbiguousError struct {
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf(
		"%s (%d candidates): %s",
		ErrMultipleMatches,
		len(e.Candidates),
		strings.Join(e.Candidates, ", "),
	)
}

func (e *AmbiguousError) Unwrap() error {
	return ErrMultipleMatches
}

// Resolve reduces matches to a single note path. It never picks among
// several candidates.
//
// Resolve takes ownership of matches: every element is cleared before it
// returns, so callers must not read the slice afterwards.
func Resolve(matches []string) (Outcome, string, error) {
	defer clear(matches)

	switch len(matches) {
	case 0:
		return NoMatch, "", ErrNoMatch
	case 1:
		path := strings.Clone(matches[0])
		return SingleMatch, path, nil
	default:
		candidates := make([]string, len(matches))
		copy(candidates, matches)
		return MultipleMatches, "", &AmbiguousError{Candidates: candidates}
	}
}
