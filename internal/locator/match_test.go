package locator

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*git*.md", "git.md", true},
		{"*git*.md", "git-branch.md", true},
		{"*git*.md", "Git.md", false},
		{"*.md", "notes.MD", false},
		{"*", "", true},
		{"?", "", false},
		{"?", ".", true},
		{"*", ".hidden", true},
		{"**", "x", true},
		{"*[!a]*.md", "a.md", false},
		{"*[!a]*.md", "b.md", true},
		{"*[^a]*.md", "a.md", false},
		{"[!a]", "b", true},
		{"[a-c]", "b", true},
		{"[a-c]", "d", false},
		{"[a-]", "-", true},
		{"[a-]", "a", true},
		{"[]]", "]", true},
		{"[]a]", "a", true},
		{"[!]]", "a", true},
		{"[!]]", "]", false},
		{`[\]]`, "]", true},
		{"[[:digit:]]x", "1x", true},
		{"[[:digit:]]x", "ax", false},
		{"[[:upper:][:digit:]]", "Q", true},
		{"[![:space:]]", " ", false},
		{"[[:bogus:]]", "b", false},
		{"[[=a=]]", "a", true},
		{"[[.a.]-c]", "b", true},
		{`\*`, "*", true},
		{`\*`, "a", false},
		{`a\`, "a", false},
		{"*[draft*.md", "[draft git.md", true},
		{"*[draft*.md", "draft.md", false},
		{"[abc", "[abc", true},
		{"[ab", "a", false},
		{"[!", "[!", true},
	}

	for _, tt := range tests {
		if got := Match(tt.pattern, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}
