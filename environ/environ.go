// Package environ implements lexical environments as chains of mutable
// frames.  An environment references its frame and its parent; extending an
// environment never copies frames, so bindings mutated through one chain are
// visible to every closure sharing an ancestor.
package environ

import (
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// Environ is a lexical environment: an innermost Frame in scope of its
// parent's bindings.  The terminal environment returned by Empty has no
// frame and terminates every chain.
type Environ struct {
	frame  *Frame
	parent *Environ
}

// Empty returns a terminal environment with no frames.  Lookup in it always
// fails and Define into it panics; it exists only to terminate chains.
func Empty() *Environ {
	return &Environ{}
}

// New returns an environment with the given frame and parent.  If frame is
// nil an empty frame is created.
func New(parent *Environ, frame *Frame) *Environ {
	if frame == nil {
		frame = NewFrame(0)
	}
	return &Environ{frame: frame, parent: parent}
}

// Extend prepends frame to env, producing a child environment.  The parent
// chain is referenced, never copied.
func (env *Environ) Extend(frame *Frame) *Environ {
	return New(env, frame)
}

// ExtendZip builds a frame pairing names with vals positionally and prepends
// it to env.  A length mismatch is an ArityMismatchError.
func (env *Environ) ExtendZip(names lisp.LVal, vals []lisp.LVal) (*Environ, error) {
	frame, err := NewFrameZip(names, vals)
	if err != nil {
		return nil, err
	}
	return env.Extend(frame), nil
}

// Parent returns the enclosing environment, or nil for the terminal
// environment.
func (env *Environ) Parent() *Environ {
	return env.parent
}

// IsEmpty reports whether env is a terminal environment.
func (env *Environ) IsEmpty() bool {
	return env.frame == nil
}

// Lookup resolves name against the chain, innermost frame first.  Lookup
// fails with UnboundVariableError if no frame binds name.
func (env *Environ) Lookup(name symbol.ID) (lisp.LVal, error) {
	for ; env != nil; env = env.parent {
		if env.frame == nil {
			continue
		}
		if v, ok := env.frame.Get(name); ok {
			return v, nil
		}
	}
	return lisp.Nil(), &lisp.UnboundVariableError{Name: name}
}

// Assign overwrites the nearest existing binding for name.  Assign fails
// with UnboundVariableError if no frame binds name; it never creates a
// binding.
func (env *Environ) Assign(name symbol.ID, v lisp.LVal) error {
	for ; env != nil; env = env.parent {
		if env.frame == nil {
			continue
		}
		if env.frame.Update(name, v) {
			return nil
		}
	}
	return &lisp.UnboundVariableError{Name: name}
}

// Define binds name to v in the innermost frame, shadowing any outer binding
// of the same name.  Define panics when called on the terminal environment;
// doing so is an embedding bug, not a runtime condition.
func (env *Environ) Define(name symbol.ID, v lisp.LVal) {
	if env.frame == nil {
		panic("define in the empty environment")
	}
	env.frame.Put(name, v)
}

// Where returns the innermost frame binding name, or nil if the chain does
// not bind it.  The macro pattern matcher compares frames returned by Where
// to decide whether two identifiers denote the same binding.
func (env *Environ) Where(name symbol.ID) *Frame {
	for ; env != nil; env = env.parent {
		if env.frame == nil {
			continue
		}
		if env.frame.Binds(name) {
			return env.frame
		}
	}
	return nil
}

var lenviron = symbol.Intern("environ")

// LVal wraps env as a tagged value.
func (env *Environ) LVal() lisp.LVal {
	return lisp.TagNative(lenviron, env)
}

// GetEnviron extracts an Environ from v.  GetEnviron returns false if v does
// not contain an Environ.
func GetEnviron(v lisp.LVal) (*Environ, bool) {
	if v.Type() != lisp.LTaggedVal {
		return nil, false
	}
	env, ok := v.Native.(*Environ)
	return env, ok
}
