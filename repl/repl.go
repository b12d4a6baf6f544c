// Package repl provides an interactive read-eval-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/eval"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/parser"
	"github.com/bmatsuo/subscheme/proc"
	"github.com/bmatsuo/subscheme/symbol"
	"github.com/chzyer/readline"
)

// RunRepl runs an interactive session over a fresh global environment.
// Incomplete expressions continue reading on the next line; evaluation
// errors print to stderr without terminating the session.
func RunRepl(prompt string) {
	table := symbol.DefaultGlobalTable
	env := proc.NewDefaultGlobal(table)
	ev := eval.New()
	p := parser.New(table)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		vals, _, perr := p.ParseLVal(line)
		if errors.Is(perr, io.ErrUnexpectedEOF) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		if perr != nil {
			errln(perr)
			continue
		}
		evalPrint(ev, env, table, vals)
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

func evalPrint(ev *eval.Evaluator, env *environ.Environ, table symbol.Table, vals []lisp.LVal) {
	for _, v := range vals {
		result, err := ev.Eval(v, env)
		if err != nil {
			errln(err)
			return
		}
		fmt.Println(lisp.FormatString(result, table))
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
