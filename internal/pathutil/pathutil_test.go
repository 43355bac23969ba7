package pathutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizePathHandlesWindowsSeparators(t *testing.T) {
	posix := filepath.Join("home", "user", "notes")
	windows := strings.ReplaceAll(posix, string(filepath.Separator), "\\")

	if got := NormalizePath(windows); got != posix {
		t.Fatalf("expected %q, got %q", posix, got)
	}
	if got := NormalizePath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "user")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/.noman", want: filepath.Join(home, ".noman")},
		{name: "absolute", in: filepath.Join(string(filepath.Separator), "srv", "notes"), want: filepath.Join(string(filepath.Separator), "srv", "notes")},
		{name: "other user", in: "~bob/notes", want: filepath.Clean("~bob/notes")},
		{name: "relative", in: "notes/./cheats", want: filepath.Join("notes", "cheats")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.in, home); got != tt.want {
				t.Fatalf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSamePath(t *testing.T) {
	if !SamePath("notes/", "notes") {
		t.Fatalf("expected trailing separator to be ignored")
	}
	if SamePath("notes", "other") {
		t.Fatalf("expected different paths to differ")
	}
}
