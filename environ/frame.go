package environ

import (
	"fmt"
	"sync"

	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// Frame is one mutable scope level, a set of variable bindings (e.g.
// procedure arguments).  Frames are shared structures: every environment
// chain extended from a common ancestor references the same Frame objects,
// so each mutation is atomic with respect to concurrent readers.  Frames
// never shrink; rebinding a name overwrites its entry in place.
type Frame struct {
	mu    sync.RWMutex
	pairs []framePair
	index map[symbol.ID]int
}

type framePair struct {
	name  symbol.ID
	value lisp.LVal
}

// NewFrame creates an empty Frame with initial capacity for n bindings.
func NewFrame(n int) *Frame {
	return &Frame{
		pairs: make([]framePair, 0, n),
		index: make(map[symbol.ID]int, n),
	}
}

// NewFrameZip pairs formal parameter names with argument values
// positionally.  The names list must be a list of symbols with exactly
// len(vals) elements; a length mismatch is an ArityMismatchError.
func NewFrameZip(names lisp.LVal, vals []lisp.LVal) (*Frame, error) {
	n, ok := lisp.ConsLen(names)
	if !ok {
		return nil, fmt.Errorf("parameter list: not a list")
	}
	if n != len(vals) {
		return nil, &lisp.ArityMismatchError{Expected: n, Got: len(vals)}
	}
	frame := NewFrame(n)
	it := lisp.NewListIterator(names)
	for i := 0; it.Next(); i++ {
		name, ok := lisp.GetSymbol(it.Value())
		if !ok {
			return nil, fmt.Errorf("parameter is not a symbol: %v", it.Value().Type())
		}
		frame.Put(name, vals[i])
	}
	return frame, nil
}

// Len returns the number of variables bound in the frame.
func (f *Frame) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.pairs)
}

// Get returns the value bound to variable.
func (f *Frame) Get(variable symbol.ID) (lisp.LVal, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, ok := f.index[variable]
	if !ok {
		return lisp.Nil(), false
	}
	return f.pairs[i].value, true
}

// Put binds variable to v.  If variable was previously bound its entry is
// updated in place.  Otherwise Put creates a new binding.
func (f *Frame) Put(variable symbol.ID, v lisp.LVal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.index[variable]
	if ok {
		f.pairs[i].value = v
		return
	}
	f.index[variable] = len(f.pairs)
	f.pairs = append(f.pairs, framePair{variable, v})
}

// Update overwrites the binding for variable.  Unlike Put, Update fails when
// variable is not already bound in the frame.
func (f *Frame) Update(variable symbol.ID, v lisp.LVal) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.index[variable]
	if !ok {
		return false
	}
	f.pairs[i].value = v
	return true
}

// Binds returns true if the frame contains a binding for variable.
func (f *Frame) Binds(variable symbol.ID) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.index[variable]
	return ok
}
