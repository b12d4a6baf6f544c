// Package proc defines the procedure values applied by the evaluator.  A
// procedure is either a Primitive backed by a go function or a Compound
// holding formal parameters, a body sequence, and the environment captured
// at definition time.
package proc

import (
	"fmt"

	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// LPrimitiveProc and LCompoundProc tag procedure values for formatting.
var (
	LPrimitiveProc = symbol.Intern("primitive-procedure")
	LCompoundProc  = symbol.Intern("compound-procedure")
)

// Fn implements a primitive procedure.  The implementation is responsible
// for checking its own arity and argument types; violations are reported as
// ordinary errors.
type Fn func(args []lisp.LVal) (lisp.LVal, error)

// Primitive is a procedure backed directly by a go function.
type Primitive struct {
	name string
	fn   Fn
}

// NewPrimitive creates a primitive procedure.  The name is only used in
// diagnostics.
func NewPrimitive(name string, fn Fn) *Primitive {
	return &Primitive{name: name, fn: fn}
}

// Name returns the name the primitive was registered under.
func (p *Primitive) Name() string {
	return p.name
}

// Apply forwards args to the wrapped go function.
func (p *Primitive) Apply(args []lisp.LVal) (lisp.LVal, error) {
	v, err := p.fn(args)
	if err != nil {
		return lisp.Nil(), fmt.Errorf("%s: %w", p.name, err)
	}
	return v, nil
}

// LVal wraps p as a tagged value.
func (p *Primitive) LVal() lisp.LVal {
	return lisp.TagNative(LPrimitiveProc, p)
}

// GetPrimitive extracts a Primitive from v.  GetPrimitive returns false if v
// does not contain a Primitive.
func GetPrimitive(v lisp.LVal) (*Primitive, bool) {
	if v.Type() != lisp.LTaggedVal {
		return nil, false
	}
	p, ok := v.Native.(*Primitive)
	return p, ok
}

// Compound is a user-defined procedure: formal parameters, a body expression
// sequence, and the defining environment captured by reference.
type Compound struct {
	formals lisp.LVal
	body    lisp.LVal
	env     *environ.Environ
}

// NewCompound creates a compound procedure.  The formals must be a list of
// symbols and the body a non-empty expression list.
func NewCompound(formals lisp.LVal, body lisp.LVal, env *environ.Environ) (*Compound, error) {
	it := lisp.NewListIterator(formals)
	for it.Next() {
		if it.Value().Type() != lisp.LSymbol {
			return nil, fmt.Errorf("formal parameter is not a symbol: %v", it.Value().Type())
		}
	}
	if it.Err() != nil {
		return nil, fmt.Errorf("formal parameters: %w", it.Err())
	}
	n, ok := lisp.ConsLen(body)
	if !ok {
		return nil, fmt.Errorf("procedure body is not a list")
	}
	if n == 0 {
		return nil, fmt.Errorf("procedure body is empty")
	}
	return &Compound{formals: formals, body: body, env: env}, nil
}

// FormalArgs returns the list of formal parameter symbols.
func (p *Compound) FormalArgs() lisp.LVal {
	return p.formals
}

// Body returns the body expression sequence.
func (p *Compound) Body() lisp.LVal {
	return p.body
}

// Environ returns the defining environment.
func (p *Compound) Environ() *environ.Environ {
	return p.env
}

// LVal wraps p as a tagged value.
func (p *Compound) LVal() lisp.LVal {
	return lisp.TagNative(LCompoundProc, p)
}

// GetCompound extracts a Compound from v.  GetCompound returns false if v
// does not contain a Compound.
func GetCompound(v lisp.LVal) (*Compound, bool) {
	if v.Type() != lisp.LTaggedVal {
		return nil, false
	}
	p, ok := v.Native.(*Compound)
	return p, ok
}
