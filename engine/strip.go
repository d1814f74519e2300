// Package engine removes comments from source text. It is a pure text
// transform: given the raw content and a dialect descriptor it strips block
// comments, then single-line comments with string-literal awareness, then
// normalizes blank lines. It performs no I/O and never fails; malformed
// input degrades to a defined output instead of an error.
package engine

import (
	"regexp"
	"strings"

	"github.com/rechati/decomment/dialect"
)

// blankRuns matches a run of two or more consecutive blank lines
// (whitespace-only lines included).
var blankRuns = regexp.MustCompile(`\n(\s*\n)+`)

// Strip returns text with the comments of the named dialect removed.
//
// Block comments go first: a leftmost-greedy scan that does not recognize
// nesting and does not exempt delimiters inside string literals; an
// unterminated block swallows the rest of the text. Python gets an extra
// pass per triple-quote style, since a file may use either. Single-line
// comments are then stripped per line: a line that is nothing but a comment
// becomes an empty line (line count preserved), otherwise the first marker
// occurrence outside a string literal truncates the line. Finally runs of
// blank lines collapse to one and the result ends with a single newline.
func Strip(text, name string, d dialect.Descriptor) string {
	if d.Multi != nil {
		text = stripBlocks(text, d.Multi.Open, d.Multi.Close)
	}
	if name == "python" {
		// Both styles, regardless of which one the descriptor names.
		// Re-stripping the descriptor's style is idempotent.
		text = stripBlocks(text, "'''", "'''")
		text = stripBlocks(text, `"""`, `"""`)
	}
	if d.Single != "" {
		text = stripLines(text, d.Single, d.StringDelims)
	}
	return normalize(text)
}

// stripBlocks removes every open...close span, scanning left to right.
// The close token is searched after the opener's last byte, so an opener
// never shares bytes with its closer. A missing closer discards everything
// from the opener to the end of the text.
func stripBlocks(text, open, close string) string {
	var b strings.Builder
	i := 0
	for {
		start := strings.Index(text[i:], open)
		if start < 0 {
			b.WriteString(text[i:])
			break
		}
		start += i
		b.WriteString(text[i:start])
		rest := start + len(open)
		end := strings.Index(text[rest:], close)
		if end < 0 {
			break
		}
		i = rest + end + len(close)
	}
	return b.String()
}

// stripLines removes single-line comments from each line of text.
func stripLines(text, marker, delims string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && strings.HasPrefix(trimmed, marker) {
			// The whole line is a comment: blank it rather than delete
			// it, so line numbers survive until the final collapse.
			lines[i] = ""
			continue
		}
		if at := commentStart(line, marker, delims); at >= 0 {
			lines[i] = strings.TrimRight(line[:at], " \t")
		}
	}
	return strings.Join(lines, "\n")
}

// commentStart returns the index of the first valid comment marker on the
// line, or -1. A match is valid when the scan state says the cursor is not
// inside a string literal and the preceding character is not ':' — the
// latter keeps http:// and friends intact at the cost of suppressing a
// comment directly after a colon.
func commentStart(line, marker, delims string) int {
	var st scanState
	for i := 0; i+len(marker) <= len(line); i++ {
		if line[i:i+len(marker)] == marker && !st.inString() {
			if i == 0 || line[i-1] != ':' {
				return i
			}
		}
		st.step(line[i], delims)
	}
	return -1
}

// normalize collapses blank-line runs to a single blank line, trims the
// text, and guarantees exactly one trailing newline.
func normalize(text string) string {
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text) + "\n"
}
