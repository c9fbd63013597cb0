package refconf

import "strings"

// wsChars is the whitespace class of the directive grammar, matching
// C isspace(): space, tab, newline, carriage return, form feed,
// vertical tab.
const wsChars = " \t\n\r\f\v"

// isBlankOrComment reports whether a raw line carries no directive:
// either whitespace only, or a comment whose first non-whitespace
// character is '#'.
func isBlankOrComment(line string) bool {
	trimmed := strings.TrimLeft(line, wsChars)
	return trimmed == "" || trimmed[0] == '#'
}

// matchDirective matches a line against the reference directive grammar:
//
//	config reference : <system> <value>
//
// with optional whitespace at both ends, mandatory whitespace between
// "config" and "reference", optional whitespace around the colon, and
// mandatory whitespace between the system identifier and the value. The
// two keywords are matched case-sensitively; the identifier must be
// [A-Za-z][A-Za-z0-9_-]*. The value is the remainder of the line with
// trailing whitespace removed and must be non-empty.
//
// Returns ok=false for any line outside this shape. That is a
// recoverable condition - the caller decides how to report it.
func matchDirective(line string) (system, value string, ok bool) {
	rest := strings.TrimLeft(line, wsChars)

	rest, ok = cutKeyword(rest, "config")
	if !ok {
		return "", "", false
	}
	// Mandatory whitespace between the two keywords.
	trimmed := strings.TrimLeft(rest, wsChars)
	if trimmed == rest {
		return "", "", false
	}

	rest, ok = cutKeyword(trimmed, "reference")
	if !ok {
		return "", "", false
	}
	rest = strings.TrimLeft(rest, wsChars)
	if rest == "" || rest[0] != ':' {
		return "", "", false
	}
	rest = strings.TrimLeft(rest[1:], wsChars)

	system, rest, ok = cutIdent(rest)
	if !ok {
		return "", "", false
	}
	// Mandatory whitespace before the value.
	trimmed = strings.TrimLeft(rest, wsChars)
	if trimmed == rest {
		return "", "", false
	}

	value = strings.TrimRight(trimmed, wsChars)
	if value == "" {
		return "", "", false
	}
	return system, value, true
}

// cutKeyword strips an exact keyword prefix. The keyword must not run
// into further identifier characters ("config_" does not match
// "config").
func cutKeyword(s, keyword string) (rest string, ok bool) {
	rest, found := strings.CutPrefix(s, keyword)
	if !found {
		return "", false
	}
	if rest != "" && isIdentByte(rest[0]) {
		return "", false
	}
	return rest, true
}

// cutIdent consumes a system identifier from the front of s.
func cutIdent(s string) (ident, rest string, ok bool) {
	if s == "" || !isLetter(s[0]) {
		return "", "", false
	}
	i := 1
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[:i], s[i:], true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
