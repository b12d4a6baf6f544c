package eval

import (
	"github.com/bmatsuo/subscheme/lisp"
)

// DesugarCond rewrites a cond form into nested if expressions.  The whole
// clause list is validated before the rewrite so that a malformed form never
// evaluates any clause.  A clause list with no else and no matching
// predicate evaluates to false.
//
//	(cond (p1 a1...) (p2 a2...) (else a3...))
//	=> (if p1 <a1...> (if p2 <a2...> <a3...>))
func DesugarCond(form lisp.LVal) (lisp.LVal, error) {
	rest, _ := lisp.GetCDR(form)
	clauses, ok := lisp.SliceAll(rest)
	if !ok {
		return lisp.Nil(), syntaxErr(symCond, "clauses do not form a list")
	}
	for i, clause := range clauses {
		parts, ok := lisp.SliceAll(clause)
		if !ok || len(parts) == 0 {
			return lisp.Nil(), syntaxErr(symCond, "clause %d is not a non-empty list", i)
		}
		if lisp.IsSymbol(parts[0], symElse) && i != len(clauses)-1 {
			return lisp.Nil(), syntaxErr(symCond, "else clause must be last")
		}
	}
	return condToIf(clauses), nil
}

func condToIf(clauses []lisp.LVal) lisp.LVal {
	if len(clauses) == 0 {
		return lisp.False()
	}
	parts, _ := lisp.SliceAll(clauses[0])
	pred, body := parts[0], seqExpr(parts[1:])
	if lisp.IsSymbol(pred, symElse) {
		return body
	}
	return lisp.List(lisp.Symbol(symIf), pred, body, condToIf(clauses[1:]))
}

// seqExpr wraps an action sequence as a single expression: zero actions
// collapse to the empty form, one action unwraps, and two or more wrap in an
// implicit begin.
func seqExpr(actions []lisp.LVal) lisp.LVal {
	switch len(actions) {
	case 0:
		return lisp.Nil()
	case 1:
		return actions[0]
	default:
		return lisp.Cons(lisp.Symbol(symBegin), lisp.List(actions...))
	}
}
