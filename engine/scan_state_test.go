package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// run feeds every byte of input through a fresh machine and returns it.
func run(input, delims string) scanState {
	var st scanState
	for i := 0; i < len(input); i++ {
		st.step(input[i], delims)
	}
	return st
}

func TestScanStateToggle(t *testing.T) {
	tests := []struct {
		input    string
		inString bool
	}{
		{``, false},
		{`x = 1`, false},
		{`x = "abc`, true},
		{`x = "abc"`, false},
		{`x = "abc" + "d`, true},
		{`x = 'mixed "quotes" inside`, true},
		{`x = 'done'`, false},
	}

	for _, tc := range tests {
		st := run(tc.input, `"'`)
		assert.Equal(t, tc.inString, st.inString(), "Input: %s", tc.input)
	}
}

// TestScanStateMismatchedDelims: a different delimiter inside an open
// string does not close it.
func TestScanStateMismatchedDelims(t *testing.T) {
	st := run(`"it's`, `"'`)
	assert.True(t, st.inString())
	assert.Equal(t, byte('"'), st.delim)

	st = run(`"it's fine"`, `"'`)
	assert.False(t, st.inString())
}

func TestScanStateEscapes(t *testing.T) {
	// An escaped quote does not close the string.
	st := run(`"a\"`, `"'`)
	assert.True(t, st.inString())

	st = run(`"a\""`, `"'`)
	assert.False(t, st.inString())

	// An escaped byte inside a string still counts as inside.
	st = run(`"a\`, `"'`)
	assert.True(t, st.inString())

	// Escape outside any string is consumed without opening one.
	st = run(`\"`, `"'`)
	assert.False(t, st.inString())
}

// TestScanStateDialectDelims: only the dialect's delimiter set toggles
// string context. Batch files treat single quotes as plain bytes.
func TestScanStateDialectDelims(t *testing.T) {
	st := run(`echo it's`, `"`)
	assert.False(t, st.inString())

	st = run("x = `tpl", "\"'`")
	assert.True(t, st.inString())
}
