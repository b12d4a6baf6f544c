package proc

import (
	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// NewGlobal constructs a global environment containing the supplied
// primitive table.  The environment also binds the symbols true and false to
// the boolean literals so that source text can name them as variables.
func NewGlobal(table symbol.Table, prims map[string]Fn) *environ.Environ {
	env := environ.New(environ.Empty(), environ.NewFrame(len(prims)+2))
	env.Define(table.Intern("true"), lisp.True())
	env.Define(table.Intern("false"), lisp.False())
	for name, fn := range prims {
		env.Define(table.Intern(name), NewPrimitive(name, fn).LVal())
	}
	return env
}

// NewDefaultGlobal constructs a global environment with the standard
// primitive table installed.
func NewDefaultGlobal(table symbol.Table) *environ.Environ {
	return NewGlobal(table, Defaults)
}
