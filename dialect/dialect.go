package dialect

import (
	"mime"
	"path/filepath"
	"strings"
)

// MarkerPair holds the open and close tokens of a block comment
// (e.g. "/*" and "*/").
type MarkerPair struct {
	Open  string
	Close string
}

// Descriptor describes the comment syntax of one dialect. Descriptors are
// constructed once in the table below and never mutated, so they may be
// shared freely across goroutines.
type Descriptor struct {
	// Extensions lists the file extensions (with leading dot, lowercase)
	// mapped to this dialect.
	Extensions []string
	// Single is the token that starts a comment running to end of line
	// (e.g. "//", "#", "--"). Empty when the dialect has no single-line form.
	Single string
	// Multi is the block comment delimiter pair, nil when none exists.
	Multi *MarkerPair
	// StringDelims holds the characters that open and close string
	// literals, used to avoid stripping markers that appear inside strings.
	StringDelims string
}

// Named pairs a dialect name with its descriptor for ordered enumeration.
type Named struct {
	Name       string
	Descriptor Descriptor
}

// Fallback is the dialect name reported when resolution finds no match.
// The descriptor returned alongside it is the c_style one, since // and
// /* */ are the most common comment forms.
const Fallback = "unknown"

// table is the closed, ordered set of supported dialects. Resolution walks
// it in order, so the first dialect claiming an extension wins.
var table = []Named{
	{"c_style", Descriptor{
		Extensions:   []string{".c", ".cpp", ".h", ".hpp", ".java", ".js", ".jsx", ".ts", ".tsx", ".cs", ".php", ".swift", ".go", ".kt", ".scala"},
		Single:       "//",
		Multi:        &MarkerPair{"/*", "*/"},
		StringDelims: "\"'`",
	}},
	{"shell", Descriptor{
		Extensions:   []string{".sh", ".bash", ".zsh", ".ksh"},
		Single:       "#",
		StringDelims: `"'`,
	}},
	{"python", Descriptor{
		Extensions: []string{".py", ".pyw", ".pyc", ".pyo", ".pyd"},
		Single:     "#",
		// Python also has '''...'''; the engine handles that style in an
		// extra pass keyed on the dialect name.
		Multi:        &MarkerPair{`"""`, `"""`},
		StringDelims: `"'`,
	}},
	{"ruby", Descriptor{
		Extensions:   []string{".rb", ".rake", ".gemspec"},
		Single:       "#",
		Multi:        &MarkerPair{"=begin", "=end"},
		StringDelims: `"'`,
	}},
	{"markup", Descriptor{
		Extensions:   []string{".html", ".htm", ".xml", ".svg", ".xhtml", ".jsp", ".asp", ".aspx"},
		Multi:        &MarkerPair{"<!--", "-->"},
		StringDelims: `"'`,
	}},
	{"css", Descriptor{
		Extensions:   []string{".css", ".scss", ".sass", ".less"},
		Single:       "//", // SCSS/LESS only
		Multi:        &MarkerPair{"/*", "*/"},
		StringDelims: `"'`,
	}},
	{"sql", Descriptor{
		Extensions:   []string{".sql", ".sqlite", ".pgsql"},
		Single:       "--",
		Multi:        &MarkerPair{"/*", "*/"},
		StringDelims: `"'`,
	}},
	{"lua", Descriptor{
		Extensions:   []string{".lua"},
		Single:       "--",
		Multi:        &MarkerPair{"--[[", "]]"},
		StringDelims: `"'`,
	}},
	{"powershell", Descriptor{
		Extensions:   []string{".ps1", ".psm1", ".psd1"},
		Single:       "#",
		Multi:        &MarkerPair{"<#", "#>"},
		StringDelims: `"'`,
	}},
	{"yaml", Descriptor{
		Extensions:   []string{".yaml", ".yml"},
		Single:       "#",
		StringDelims: `"'`,
	}},
	{"perl", Descriptor{
		Extensions:   []string{".pl", ".pm", ".t"},
		Single:       "#",
		Multi:        &MarkerPair{"=pod", "=cut"},
		StringDelims: "\"'`",
	}},
	{"r", Descriptor{
		Extensions:   []string{".r"},
		Single:       "#",
		StringDelims: `"'`,
	}},
	{"haskell", Descriptor{
		Extensions:   []string{".hs", ".lhs"},
		Single:       "--",
		Multi:        &MarkerPair{"{-", "-}"},
		StringDelims: `"'`,
	}},
	{"batch", Descriptor{
		Extensions:   []string{".bat", ".cmd"},
		Single:       "REM",
		StringDelims: `"`,
	}},
}

// Resolve picks the dialect for a file path. It matches the lowercased
// extension against the table in order, then falls back to a coarse
// content-type classification, and finally to the c_style descriptor under
// the Fallback name. It never fails: the result is always usable.
func Resolve(path string) (string, Descriptor) {
	ext := strings.ToLower(filepath.Ext(path))

	for _, n := range table {
		for _, e := range n.Descriptor.Extensions {
			if e == ext {
				return n.Name, n.Descriptor
			}
		}
	}

	if name, d, ok := ResolveContentType(mime.TypeByExtension(ext)); ok {
		return name, d
	}

	return Fallback, mustLookup("c_style")
}

// ResolveContentType maps a content type (e.g. "text/html; charset=utf-8")
// to a dialect by family. It reports false for empty or unrecognized types.
func ResolveContentType(contentType string) (string, Descriptor, bool) {
	var name string
	switch {
	case strings.HasPrefix(contentType, "text/x-python"):
		name = "python"
	case strings.HasPrefix(contentType, "text/html"),
		strings.HasPrefix(contentType, "application/xml"):
		name = "markup"
	case strings.HasPrefix(contentType, "text/css"):
		name = "css"
	case strings.HasPrefix(contentType, "application/javascript"),
		strings.HasPrefix(contentType, "text/javascript"):
		name = "c_style"
	case strings.HasPrefix(contentType, "text/x-sql"):
		name = "sql"
	default:
		return "", Descriptor{}, false
	}
	return name, mustLookup(name), true
}

// Lookup returns the descriptor registered under name, for forced-type
// overrides. The Fallback name is not in the table.
func Lookup(name string) (Descriptor, bool) {
	for _, n := range table {
		if n.Name == name {
			return n.Descriptor, true
		}
	}
	return Descriptor{}, false
}

// All returns every dialect in resolution order.
func All() []Named {
	out := make([]Named, len(table))
	copy(out, table)
	return out
}

func mustLookup(name string) Descriptor {
	d, ok := Lookup(name)
	if !ok {
		panic("dialect: missing table entry " + name)
	}
	return d
}
