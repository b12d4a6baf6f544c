// Package pattern matches list forms against syntax patterns, producing
// variable bindings of the kind a macro expander consumes.  Patterns are
// ordinary list values in which symbols act as variables unless declared
// literal, a trailing "..." repeats the preceding sub-pattern, and nested
// lists match structurally.
package pattern

import (
	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// Ellipsis is the name of the repetition marker recognized in patterns.
const Ellipsis = "..."

// Literals is the set of symbols a pattern treats as literal identifiers
// rather than pattern variables.
type Literals map[symbol.ID]bool

// NewLiterals returns a literal set containing the given symbols.
func NewLiterals(ids ...symbol.ID) Literals {
	lits := make(Literals, len(ids))
	for _, id := range ids {
		lits[id] = true
	}
	return lits
}

// Match matches form against pattern.  Both are list structures.  defEnv is
// the environment the pattern was defined in and useEnv the environment the
// form appears in; a literal identifier matches only when the pattern symbol
// and the form symbol name the same binding in their respective
// environments.  A failed match returns (nil, false) and is not an error.
func Match(pattern lisp.LVal, form lisp.LVal, literals Literals, defEnv *environ.Environ, useEnv *environ.Environ) (*Bindings, bool) {
	m := &matcher{
		literals: literals,
		ellipsis: symbol.Intern(Ellipsis),
		defEnv:   defEnv,
		useEnv:   useEnv,
	}
	b := NewBindings()
	if !m.matchList(pattern, form, b) {
		return nil, false
	}
	return b, true
}

type matcher struct {
	literals Literals
	ellipsis symbol.ID
	defEnv   *environ.Environ
	useEnv   *environ.Environ
}

// matchList matches a list pattern against a list form element by element,
// accumulating bindings into b.
func (m *matcher) matchList(pattern lisp.LVal, form lisp.LVal, b *Bindings) bool {
	if lisp.IsNil(pattern) {
		return lisp.IsNil(form)
	}
	pcons, ok := lisp.GetConsData(pattern)
	if !ok {
		return false
	}
	if id, ok := lisp.GetSymbol(pcons.CAR); ok && id == m.ellipsis {
		// An ellipsis needs a sub-pattern before it.
		return false
	}
	if tcons, ok := lisp.GetConsData(pcons.CDR); ok {
		if id, ok := lisp.GetSymbol(tcons.CAR); ok && id == m.ellipsis {
			return m.matchRepeat(pcons.CAR, tcons.CDR, form, b)
		}
	}
	fcons, ok := lisp.GetConsData(form)
	if !ok {
		return false
	}
	if !m.matchOne(pcons.CAR, fcons.CAR, b) {
		return false
	}
	return m.matchList(pcons.CDR, fcons.CDR, b)
}

// matchOne matches a single pattern element against a single form element.
func (m *matcher) matchOne(pattern lisp.LVal, form lisp.LVal, b *Bindings) bool {
	if id, ok := lisp.GetSymbol(pattern); ok {
		if m.literals[id] {
			return m.matchLiteral(id, form)
		}
		b.add(id, form)
		return true
	}
	if _, ok := lisp.GetConsData(pattern); ok || lisp.IsNil(pattern) {
		return m.matchList(pattern, form, b)
	}
	return false
}

// matchRepeat matches every remaining element of form against sub, merging
// the bindings of each repetition in order.  Zero repetitions succeed and
// bind nothing.
func (m *matcher) matchRepeat(sub lisp.LVal, rest lisp.LVal, form lisp.LVal, b *Bindings) bool {
	it := lisp.NewListIterator(form)
	for it.Next() {
		rep := NewBindings()
		if !m.matchOne(sub, it.Value(), rep) {
			return false
		}
		b.merge(rep)
	}
	if it.Err() != nil {
		return false
	}
	return m.matchList(rest, lisp.Nil(), b)
}

// matchLiteral reports whether form is a symbol naming the same binding as
// the literal pattern symbol lit.  Two unbound occurrences of the same
// symbol also match.
func (m *matcher) matchLiteral(lit symbol.ID, form lisp.LVal) bool {
	id, ok := lisp.GetSymbol(form)
	if !ok {
		return false
	}
	if id != lit {
		return false
	}
	return m.defEnv.Where(lit) == m.useEnv.Where(id)
}
