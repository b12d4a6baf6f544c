package eval

import (
	"fmt"

	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/proc"
	"github.com/bmatsuo/subscheme/symbol"
)

func syntaxErr(form symbol.ID, format string, args ...interface{}) error {
	return &lisp.MalformedSyntaxError{Form: form, Detail: fmt.Sprintf(format, args...)}
}

// operands splits form into its trailing expressions, dropping the tag.
func operands(tag symbol.ID, form lisp.LVal) ([]lisp.LVal, error) {
	rest, _ := lisp.GetCDR(form)
	args, ok := lisp.SliceAll(rest)
	if !ok {
		return nil, syntaxErr(tag, "form is not a list")
	}
	return args, nil
}

//	(quote x)
func formQuote(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	args, err := operands(symQuote, form)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(args) != 1 {
		return lisp.Nil(), syntaxErr(symQuote, "requires 1 argument (got %d)", len(args))
	}
	return args[0], nil
}

//	(set! name expr)
func formSet(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	args, err := operands(symSet, form)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(args) != 2 {
		return lisp.Nil(), syntaxErr(symSet, "requires 2 arguments (got %d)", len(args))
	}
	name, ok := lisp.GetSymbol(args[0])
	if !ok {
		return lisp.Nil(), syntaxErr(symSet, "first argument is not a symbol: %v", args[0].Type())
	}
	v, err := ev.Eval(args[1], env)
	if err != nil {
		return lisp.Nil(), err
	}
	if err := env.Assign(name, v); err != nil {
		return lisp.Nil(), err
	}
	return lisp.Nil(), nil
}

//	(define name expr)
//	(define (name params...) body...)
func formDefine(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	args, err := operands(symDefine, form)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(args) < 2 {
		return lisp.Nil(), syntaxErr(symDefine, "requires at least 2 arguments (got %d)", len(args))
	}
	if args[0].Type() == lisp.LCons {
		// procedure sugar: bind name to an equivalent lambda
		sig := lisp.MustCons(args[0])
		name, ok := lisp.GetSymbol(sig.CAR())
		if !ok {
			return lisp.Nil(), syntaxErr(symDefine, "procedure name is not a symbol: %v", sig.CAR().Type())
		}
		fn, err := makeProcedure(symDefine, sig.CDR(), args[1:], env)
		if err != nil {
			return lisp.Nil(), err
		}
		env.Define(name, fn)
		return lisp.Nil(), nil
	}
	name, ok := lisp.GetSymbol(args[0])
	if !ok {
		return lisp.Nil(), syntaxErr(symDefine, "first argument is not a symbol: %v", args[0].Type())
	}
	if len(args) != 2 {
		return lisp.Nil(), syntaxErr(symDefine, "requires 2 arguments (got %d)", len(args))
	}
	v, err := ev.Eval(args[1], env)
	if err != nil {
		return lisp.Nil(), err
	}
	env.Define(name, v)
	return lisp.Nil(), nil
}

//	(if pred conseq)
//	(if pred conseq alt)
func formIf(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	args, err := operands(symIf, form)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(args) != 2 && len(args) != 3 {
		return lisp.Nil(), syntaxErr(symIf, "requires 2 or 3 arguments (got %d)", len(args))
	}
	pred, err := ev.Eval(args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	if lisp.IsTrue(pred) {
		return ev.Eval(args[1], env)
	}
	if len(args) == 2 {
		return lisp.False(), nil
	}
	return ev.Eval(args[2], env)
}

//	(lambda (params...) body...)
func formLambda(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	args, err := operands(symLambda, form)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(args) < 2 {
		return lisp.Nil(), syntaxErr(symLambda, "requires at least 2 arguments (got %d)", len(args))
	}
	return makeProcedure(symLambda, args[0], args[1:], env)
}

func makeProcedure(tag symbol.ID, formals lisp.LVal, body []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	p, err := proc.NewCompound(formals, lisp.List(body...), env)
	if err != nil {
		return lisp.Nil(), syntaxErr(tag, "%v", err)
	}
	return p.LVal(), nil
}

//	(begin body...)
func formBegin(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	rest, _ := lisp.GetCDR(form)
	return ev.evalSequence(rest, env)
}
