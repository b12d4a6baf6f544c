// Package symbol implements interned symbols.  Symbols are identified by
// opaque integer IDs so that values and environments can compare identifiers
// without string comparison.  A Table maps IDs back to their names for
// formatting and diagnostics.
package symbol

import (
	"fmt"
	"sync"
)

// An ID identifies an interned symbol.
type ID uint64

// String resolves id against the default global table.  Unknown IDs render as
// a diagnostic placeholder instead of failing.
func (id ID) String() string {
	s, ok := DefaultGlobalTable.Symbol(id)
	if !ok {
		return fmt.Sprintf("#<symbol %#x>", uint64(id))
	}
	return s
}

// DefaultGlobalTable is the process-wide symbol table.  Packages intern fixed
// symbol handles into it during init.
var DefaultGlobalTable Table = NewTable()

// Intern interns s into DefaultGlobalTable and returns its ID.
func Intern(s string) ID {
	return DefaultGlobalTable.Intern(s)
}

// Table maps symbol IDs to strings.
type Table interface {
	// Len returns the number of symbols interned in the table.
	Len() int
	// Intern inserts the given symbol into the table if it is not present
	// and returns its ID.
	Intern(symbol string) ID
	// Peek retrieves the ID of a symbol without interning it.  Peek returns
	// true iff the symbol has been interned into the table.
	Peek(symbol string) (ID, bool)
	// Symbol returns the name associated with id.
	Symbol(id ID) (string, bool)
}

// NewTable returns an empty Table safe for concurrent use.
func NewTable() Table {
	return &table{
		ids:   make(map[string]ID),
		names: make(map[ID]string),
	}
}

type table struct {
	mu     sync.RWMutex
	lastid ID
	ids    map[string]ID
	names  map[ID]string
}

var _ Table = (*table)(nil)

func (t *table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ids)
}

func (t *table) Intern(s string) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[s]; ok {
		return id
	}
	t.lastid++
	id := t.lastid
	t.ids[s] = id
	t.names[id] = s
	return id
}

func (t *table) Peek(s string) (ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.ids[s]
	return id, ok
}

func (t *table) Symbol(id ID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.names[id]
	return s, ok
}

// InternAll interns every name in symbols and returns the matching IDs.
func InternAll(t Table, symbols ...string) []ID {
	ids := make([]ID, 0, len(symbols))
	for _, s := range symbols {
		ids = append(ids, t.Intern(s))
	}
	return ids
}
