package parser

import (
	"io"
	"testing"

	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtoms(t *testing.T) {
	table := symbol.NewTable()
	p := New(table)
	for _, test := range []struct {
		text   string
		expect string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"1.5", "1.5"},
		{"1e3", "1000"},
		{`"hello"`, `"hello"`},
		{`"a \"b\""`, `"a \"b\""`},
		{"abc", "abc"},
		{"set!", "set!"},
		{"null?", "null?"},
		{"...", "..."},
		{"+", "+"},
		{"<=", "<="},
	} {
		vals, err := p.ParseString(test.text)
		require.NoError(t, err, "input: %v", test.text)
		require.Len(t, vals, 1, "input: %v", test.text)
		assert.Equal(t, test.expect, lisp.FormatString(vals[0], table), "input: %v", test.text)
	}
}

func TestParseLists(t *testing.T) {
	table := symbol.NewTable()
	p := New(table)
	for _, test := range []struct {
		text   string
		expect string
	}{
		{"()", "()"},
		{"(1 2 3)", "(1 2 3)"},
		{"(a (b c) d)", "(a (b c) d)"},
		{"(define (id a) a)", "(define (id a) a)"},
		{"(cond (false 1) (else 2))", "(cond (false 1) (else 2))"},
	} {
		vals, err := p.ParseString(test.text)
		require.NoError(t, err, "input: %v", test.text)
		require.Len(t, vals, 1, "input: %v", test.text)
		assert.Equal(t, test.expect, lisp.FormatString(vals[0], table), "input: %v", test.text)
	}
}

func TestParseQuote(t *testing.T) {
	table := symbol.NewTable()
	p := New(table)
	vals, err := p.ParseString("'x")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "(quote x)", lisp.FormatString(vals[0], table))

	vals, err = p.ParseString("'(1 2)")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "(quote (1 2))", lisp.FormatString(vals[0], table))

	vals, err = p.ParseString("''x")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "(quote (quote x))", lisp.FormatString(vals[0], table))
}

func TestParseMultiple(t *testing.T) {
	table := symbol.NewTable()
	p := New(table)
	vals, err := p.ParseString("(define x 1) (set! x 2) x")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, "x", lisp.FormatString(vals[2], table))
}

func TestParseComment(t *testing.T) {
	table := symbol.NewTable()
	p := New(table)
	vals, err := p.ParseString("; leading comment\n(+ 1 2) ; trailing comment")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "(+ 1 2)", lisp.FormatString(vals[0], table))
}

func TestParseIncomplete(t *testing.T) {
	table := symbol.NewTable()
	p := New(table)
	_, err := p.ParseString("(define x")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseSymbolInterning(t *testing.T) {
	// The same name parses to the same symbol every time.
	table := symbol.NewTable()
	p := New(table)
	vals, err := p.ParseString("abc abc")
	require.NoError(t, err)
	require.Len(t, vals, 2)
	id1, ok := lisp.GetSymbol(vals[0])
	require.True(t, ok)
	id2, ok := lisp.GetSymbol(vals[1])
	require.True(t, ok)
	assert.Equal(t, id1, id2)
}
