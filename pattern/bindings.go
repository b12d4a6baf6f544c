package pattern

import (
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// Bindings maps pattern variables to the sequences of forms they matched.
// Every variable is bound to a sequence, not a single value, so that
// ellipsis variables merge uniformly with plain ones; a non-repeated
// variable holds a one-element sequence.
type Bindings struct {
	pairs []bindingPair
	index map[symbol.ID]int
}

type bindingPair struct {
	name symbol.ID
	seq  []lisp.LVal
}

// NewBindings returns an empty binding set.
func NewBindings() *Bindings {
	return &Bindings{index: make(map[symbol.ID]int)}
}

// Len returns the number of variables bound.
func (b *Bindings) Len() int {
	return len(b.pairs)
}

// Get returns the sequence bound to name.
func (b *Bindings) Get(name symbol.ID) ([]lisp.LVal, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.pairs[i].seq, true
}

// Names returns the bound variables in the order they were first
// encountered.
func (b *Bindings) Names() []symbol.ID {
	names := make([]symbol.ID, 0, len(b.pairs))
	for i := range b.pairs {
		names = append(names, b.pairs[i].name)
	}
	return names
}

// add appends vals to the sequence bound to name, creating the binding when
// name is new.
func (b *Bindings) add(name symbol.ID, vals ...lisp.LVal) {
	i, ok := b.index[name]
	if !ok {
		b.index[name] = len(b.pairs)
		b.pairs = append(b.pairs, bindingPair{name: name, seq: vals})
		return
	}
	b.pairs[i].seq = append(b.pairs[i].seq, vals...)
}

// merge concatenates other's sequences onto b's, key by key, preserving
// encounter order.  Repeated merges are what let an ellipsis variable
// accumulate one entry per repetition.
func (b *Bindings) merge(other *Bindings) {
	for i := range other.pairs {
		b.add(other.pairs[i].name, other.pairs[i].seq...)
	}
}
