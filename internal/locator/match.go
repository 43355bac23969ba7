package locator

// Match reports whether name matches the shell wildcard pattern, following
// POSIX fnmatch with no flags in the C locale: bytes are compared one by
// one, '*' and '?' match any byte including a leading '.', '\' escapes the
// next byte, and '[...]' is a bracket expression negated by '!' or '^'.
// A '[' with no closing ']' matches itself.
func Match(pattern, name string) bool {
	p, n := 0, 0

	for p < len(pattern) {
		c := pattern[p]
		p++

		switch c {
		case '?':
			if n == len(name) {
				return false
			}
			n++

		case '\\':
			// a trailing backslash never matches
			if p == len(pattern) || n == len(name) || name[n] != pattern[p] {
				return false
			}
			p++
			n++

		case '*':
			for p < len(pattern) && pattern[p] == '*' {
				p++
			}
			if p == len(pattern) {
				return true
			}
			for i := n; i <= len(name); i++ {
				if Match(pattern[p:], name[i:]) {
					return true
				}
			}
			return false

		case '[':
			if n == len(name) {
				return false
			}
			next, res := matchBracket(pattern, p, name[n])
			switch res {
			case bracketMatch:
				p = next
				n++
			case bracketLiteral:
				if name[n] != '[' {
					return false
				}
				n++
			default:
				return false
			}

		default:
			if n == len(name) || name[n] != c {
				return false
			}
			n++
		}
	}

	return n == len(name)
}

type bracketResult int

const (
	bracketNoMatch bracketResult = iota
	bracketMatch
	// bracketLiteral means the expression is unterminated and its '['
	// stands for itself.
	bracketLiteral
)

type elemKind int

const (
	elemChar elemKind = iota
	elemClass
	elemBad
)

type element struct {
	kind  elemKind
	char  byte
	class string
	next  int
}

// matchBracket matches ch against the bracket expression whose body starts
// at pattern[i], just past the '['. On a match it returns the index past
// the closing ']'.
func matchBracket(pattern string, i int, ch byte) (int, bracketResult) {
	negate := i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^')
	if negate {
		i++
	}

	for first := true; ; first = false {
		if i >= len(pattern) {
			return 0, bracketLiteral
		}
		// a ']' in first position is a member, not the terminator
		if pattern[i] == ']' && !first {
			if negate {
				return i + 1, bracketMatch
			}
			return 0, bracketNoMatch
		}

		el := readElement(pattern, i)
		switch el.kind {
		case elemBad:
			return 0, bracketNoMatch

		case elemClass:
			i = el.next
			if inClass(el.class, ch) {
				return finishBracket(pattern, i, negate)
			}

		case elemChar:
			i = el.next
			if i < len(pattern) && pattern[i] == '-' && (i+1 == len(pattern) || pattern[i+1] != ']') {
				hi := readRangeEnd(pattern, i+1)
				if hi.kind == elemBad {
					return 0, bracketNoMatch
				}
				i = hi.next
				if el.char <= ch && ch <= hi.char {
					return finishBracket(pattern, i, negate)
				}
				continue
			}
			if el.char == ch {
				return finishBracket(pattern, i, negate)
			}
		}
	}
}

// finishBracket skips the rest of an expression that already matched. An
// expression that turns out to be unterminated matches nothing.
func finishBracket(pattern string, i int, negate bool) (int, bracketResult) {
	for {
		if i >= len(pattern) {
			return 0, bracketNoMatch
		}

		switch c := pattern[i]; {
		case c == ']':
			if negate {
				return 0, bracketNoMatch
			}
			return i + 1, bracketMatch
		case c == '\\':
			if i+1 >= len(pattern) {
				return 0, bracketNoMatch
			}
			i += 2
		case c == '[' && i+1 < len(pattern) && pattern[i+1] == '.':
			end := symbolEnd(pattern, i+2, '.')
			if end < 0 {
				return 0, bracketNoMatch
			}
			i = end
		case c == '[':
			el := readElement(pattern, i)
			if el.kind == elemBad {
				// shape is all that matters while skipping
				el.next = classEnd(pattern, i)
			}
			i = el.next
		default:
			i++
		}
	}
}

// readElement reads one bracket member at pattern[i]: a byte, an escaped
// byte, a [:class:], an [=c=] equivalence class or a [.c.] collating
// symbol. Only single-byte names exist in the C locale.
func readElement(pattern string, i int) element {
	c := pattern[i]

	if c == '\\' {
		if i+1 >= len(pattern) {
			return element{kind: elemBad}
		}
		return element{kind: elemChar, char: pattern[i+1], next: i + 2}
	}

	if c != '[' || i+1 >= len(pattern) {
		return element{kind: elemChar, char: c, next: i + 1}
	}

	switch pattern[i+1] {
	case ':':
		j := i + 2
		for j < len(pattern) && pattern[j] >= 'a' && pattern[j] <= 'z' {
			j++
		}
		if j+1 < len(pattern) && pattern[j] == ':' && pattern[j+1] == ']' {
			name := pattern[i+2 : j]
			if _, ok := classes[name]; !ok {
				return element{kind: elemBad}
			}
			return element{kind: elemClass, class: name, next: j + 2}
		}

	case '=':
		j := i + 2
		if j+2 < len(pattern) && pattern[j+1] == '=' && pattern[j+2] == ']' {
			return element{kind: elemChar, char: pattern[j], next: j + 3}
		}

	case '.':
		return readSymbol(pattern, i)
	}

	return element{kind: elemChar, char: '[', next: i + 1}
}

// readRangeEnd reads the upper bound of a range. Character classes are not
// allowed there, so "[:" is a plain '['.
func readRangeEnd(pattern string, i int) element {
	if i >= len(pattern) {
		return element{kind: elemBad}
	}

	switch c := pattern[i]; {
	case c == '\\':
		if i+1 >= len(pattern) {
			return element{kind: elemBad}
		}
		return element{kind: elemChar, char: pattern[i+1], next: i + 2}
	case c == '[' && i+1 < len(pattern) && pattern[i+1] == '.':
		return readSymbol(pattern, i)
	default:
		return element{kind: elemChar, char: c, next: i + 1}
	}
}

func readSymbol(pattern string, i int) element {
	end := symbolEnd(pattern, i+2, '.')
	if end < 0 || end-i != 5 {
		return element{kind: elemBad}
	}
	return element{kind: elemChar, char: pattern[i+2], next: end}
}

// symbolEnd returns the index past the first "<delim>]" at or after i, or
// -1 if there is none.
func symbolEnd(pattern string, i int, delim byte) int {
	for ; i+1 < len(pattern); i++ {
		if pattern[i] == delim && pattern[i+1] == ']' {
			return i + 2
		}
	}
	return -1
}

func classEnd(pattern string, i int) int {
	if end := symbolEnd(pattern, i+2, ':'); end >= 0 {
		return end
	}
	return i + 1
}

var classes = map[string]func(byte) bool{
	"alnum":  func(c byte) bool { return isAlpha(c) || isDigit(c) },
	"alpha":  isAlpha,
	"blank":  func(c byte) bool { return c == ' ' || c == '\t' },
	"cntrl":  func(c byte) bool { return c < 0x20 || c == 0x7f },
	"digit":  isDigit,
	"graph":  func(c byte) bool { return c > 0x20 && c < 0x7f },
	"lower":  func(c byte) bool { return c >= 'a' && c <= 'z' },
	"print":  func(c byte) bool { return c >= 0x20 && c < 0x7f },
	"punct":  func(c byte) bool { return c > 0x20 && c < 0x7f && !isAlpha(c) && !isDigit(c) },
	"space":  func(c byte) bool { return c == ' ' || (c >= '\t' && c <= '\r') },
	"upper":  func(c byte) bool { return c >= 'A' && c <= 'Z' },
	"xdigit": func(c byte) bool { return isDigit(c) || (c|0x20) >= 'a' && (c|0x20) <= 'f' },
}

func inClass(name string, c byte) bool {
	return classes[name](c)
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
