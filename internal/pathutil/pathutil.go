package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ExpandHome replaces a leading "~" with home and normalizes the result.
// Paths naming another user's home ("~bob/notes") are left untouched.
func ExpandHome(p, home string) string {
	switch {
	case p == "~":
		return NormalizePath(home)
	case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, "~\\"):
		return filepath.Join(NormalizePath(home), NormalizePath(p[2:]))
	default:
		return NormalizePath(p)
	}
}

// SamePath reports whether a and b name the same location once normalized.
func SamePath(a, b string) bool {
	return NormalizePath(a) == NormalizePath(b)
}
