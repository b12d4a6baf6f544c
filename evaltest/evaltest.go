// Package evaltest provides a table-driven harness for end-to-end
// interpreter tests written as source text.
package evaltest

import (
	"testing"

	"github.com/bmatsuo/subscheme/eval"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/parser"
	"github.com/bmatsuo/subscheme/proc"
	"github.com/bmatsuo/subscheme/symbol"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// against a shared environment.  Result holds the rendering of the evaluated
// value, or the error message when evaluation fails.
type TestSequence []struct {
	Expr   string // an expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		table := symbol.DefaultGlobalTable
		env := proc.NewDefaultGlobal(table)
		ev := eval.New()
		p := parser.New(table)
		for j, expr := range test.TestSequence {
			v, err := p.ParseString(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: expected one expression (got %d)", i, test.Name, j, len(v))
				continue
			}
			var result string
			value, err := ev.Eval(v[0], env)
			if err != nil {
				result = err.Error()
			} else {
				result = lisp.FormatString(value, table)
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}
