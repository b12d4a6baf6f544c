package environ

import (
	"errors"
	"sync"
	"testing"

	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	myvar := symbol.Intern("myvar")
	f := NewFrame(0)
	assert.Equal(t, 0, f.Len())
	v, ok := f.Get(myvar)
	assert.False(t, ok)
	assert.True(t, lisp.IsNil(v))

	f.Put(myvar, lisp.Int(1))
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Binds(myvar))
	v, ok = f.Get(myvar)
	require.True(t, ok)
	assertIntEqual(t, 1, v)

	// rebinding overwrites in place
	f.Put(myvar, lisp.Int(2))
	assert.Equal(t, 1, f.Len())
	v, _ = f.Get(myvar)
	assertIntEqual(t, 2, v)

	assert.True(t, f.Update(myvar, lisp.Int(3)))
	v, _ = f.Get(myvar)
	assertIntEqual(t, 3, v)
	assert.False(t, f.Update(symbol.Intern("missing"), lisp.Int(1)))
}

func TestFrameZip(t *testing.T) {
	vara := symbol.Intern("a")
	varb := symbol.Intern("b")
	names := lisp.List(lisp.Symbol(vara), lisp.Symbol(varb))

	f, err := NewFrameZip(names, []lisp.LVal{lisp.Int(1), lisp.Int(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	v, ok := f.Get(varb)
	require.True(t, ok)
	assertIntEqual(t, 2, v)

	_, err = NewFrameZip(names, nil)
	var arity *lisp.ArityMismatchError
	require.ErrorAs(t, err, &arity)

	_, err = NewFrameZip(lisp.Int(1), nil)
	require.Error(t, err)
	assert.False(t, errors.As(err, &arity))
}

func TestFrameConcurrentMutation(t *testing.T) {
	f := NewFrame(0)
	ids := symbol.InternAll(symbol.DefaultGlobalTable,
		"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7")
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(2)
		go func(id symbol.ID, x int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Put(id, lisp.Int(x))
			}
		}(id, i)
		go func(id symbol.ID) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v, ok := f.Get(id); ok {
					// a reader never observes a partial insert
					_, isInt := lisp.GetInt(v)
					assert.True(t, isInt)
				}
			}
		}(id)
	}
	wg.Wait()
	assert.Equal(t, len(ids), f.Len())
}
