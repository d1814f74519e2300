package engine

import "strings"

// The per-line scanner tracks whether the cursor sits inside a string
// literal so that comment markers occurring in strings are left alone.
// It is a three-state machine: Normal, InString (with the delimiter that
// opened the string), and Escaped (the byte after a backslash is literal).
type stateKind int

const (
	stateNormal stateKind = iota
	stateInString
	stateEscaped
)

// scanState is created fresh for every line and discarded afterwards;
// string context never carries across lines.
type scanState struct {
	kind stateKind
	// delim is the character that opened the current string. While in
	// stateEscaped it remembers the string context to return to; zero
	// means the escape happened outside any string.
	delim byte
}

// step consumes one byte. delims is the dialect's set of string-delimiter
// characters.
func (s *scanState) step(ch byte, delims string) {
	switch s.kind {
	case stateEscaped:
		if s.delim != 0 {
			s.kind = stateInString
		} else {
			s.kind = stateNormal
		}
	case stateNormal:
		switch {
		case ch == '\\':
			s.kind = stateEscaped
		case strings.IndexByte(delims, ch) >= 0:
			s.kind = stateInString
			s.delim = ch
		}
	case stateInString:
		switch ch {
		case '\\':
			s.kind = stateEscaped
		case s.delim:
			s.kind = stateNormal
			s.delim = 0
		}
	}
}

// inString reports whether the cursor is inside a string literal. An
// escaped byte inside a string still counts as inside.
func (s *scanState) inString() bool {
	return s.kind == stateInString || (s.kind == stateEscaped && s.delim != 0)
}
