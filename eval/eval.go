// Package eval implements the expression evaluator and procedure applier.
// Evaluation dispatches on the shape of an expression: literals evaluate to
// themselves, symbols resolve through the environment, registered special
// forms are handled by their own rule, cond is rewritten into nested ifs,
// and every other list form is an application.
package eval

import (
	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/proc"
	"github.com/bmatsuo/subscheme/symbol"
)

var (
	symQuote  = symbol.Intern("quote")
	symSet    = symbol.Intern("set!")
	symDefine = symbol.Intern("define")
	symIf     = symbol.Intern("if")
	symLambda = symbol.Intern("lambda")
	symBegin  = symbol.Intern("begin")
	symCond   = symbol.Intern("cond")
	symElse   = symbol.Intern("else")
)

// Evaluator evaluates expressions against lexical environments.  The zero
// Evaluator is not usable; construct one with New.
type Evaluator struct {
	forms *Registry
}

// New returns an Evaluator with the default special forms registered.
func New() *Evaluator {
	ev := &Evaluator{forms: NewRegistry()}
	ev.forms.RegisterDefaults()
	return ev
}

// Register adds a special-form handler reachable from this evaluator.  It is
// a startup-time operation; registering forms while evaluations are in
// flight is not supported.
func (ev *Evaluator) Register(tag symbol.ID, h Handler) {
	ev.forms.Register(tag, h)
}

// Eval evaluates v in env.  Classification order matters: the boolean
// literals are self-evaluating even though the names true and false also
// resolve as variables in the global environment.
func (ev *Evaluator) Eval(v lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	switch v.Type() {
	case lisp.LNil, lisp.LInt, lisp.LFloat, lisp.LString, lisp.LBool:
		return v, nil
	case lisp.LSymbol:
		id, _ := lisp.GetSymbol(v)
		return env.Lookup(id)
	case lisp.LCons:
		head, _ := lisp.GetCAR(v)
		if id, ok := lisp.GetSymbol(head); ok {
			if h, ok := ev.forms.Handler(id); ok {
				return h(ev, v, env)
			}
			if id == symCond {
				rewritten, err := DesugarCond(v)
				if err != nil {
					return lisp.Nil(), err
				}
				return ev.Eval(rewritten, env)
			}
		}
		return ev.evalApplication(v, env)
	default:
		return lisp.Nil(), &lisp.UnknownExpressionTypeError{Expr: v}
	}
}

// Apply invokes a procedure value on an argument list.  Primitives receive
// the arguments directly; compound procedures evaluate their body in a new
// frame extending the captured environment.
func (ev *Evaluator) Apply(fn lisp.LVal, args []lisp.LVal) (lisp.LVal, error) {
	if p, ok := proc.GetPrimitive(fn); ok {
		return p.Apply(args)
	}
	p, ok := proc.GetCompound(fn)
	if !ok {
		return lisp.Nil(), &lisp.NotAProcedureError{Value: fn}
	}
	env, err := p.Environ().ExtendZip(p.FormalArgs(), args)
	if err != nil {
		return lisp.Nil(), err
	}
	return ev.evalSequence(p.Body(), env)
}

func (ev *Evaluator) evalApplication(form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	it := lisp.NewListIterator(form)
	if !it.Next() {
		return lisp.Nil(), &lisp.MalformedSyntaxError{Detail: "application is not a list"}
	}
	fn, err := ev.Eval(it.Value(), env)
	if err != nil {
		return lisp.Nil(), err
	}
	// operands evaluate left to right, each fully before the next
	var args []lisp.LVal
	for it.Next() {
		v, err := ev.Eval(it.Value(), env)
		if err != nil {
			return lisp.Nil(), err
		}
		args = append(args, v)
	}
	if it.Err() != nil {
		return lisp.Nil(), &lisp.MalformedSyntaxError{Detail: "operands do not form a list"}
	}
	return ev.Apply(fn, args)
}

// evalSequence evaluates each expression of body in order, returning the
// value of the last.  The final evaluation is an ordinary recursive call, so
// host stack depth grows with call depth; there is no tail-call elimination.
func (ev *Evaluator) evalSequence(body lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	result := lisp.Nil()
	it := lisp.NewListIterator(body)
	for it.Next() {
		var err error
		result, err = ev.Eval(it.Value(), env)
		if err != nil {
			return lisp.Nil(), err
		}
	}
	if it.Err() != nil {
		return lisp.Nil(), &lisp.MalformedSyntaxError{Detail: "body does not form a list"}
	}
	return result, nil
}
