package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCons(t *testing.T) {
	v := Cons(Int(1), Int(2))
	require.Equal(t, LCons, v.Type())
	car, ok := GetCAR(v)
	require.True(t, ok)
	assert.True(t, Equal(Int(1), car))
	cdr, ok := GetCDR(v)
	require.True(t, ok)
	assert.True(t, Equal(Int(2), cdr))
}

func TestConsMutation(t *testing.T) {
	v := Cons(Int(1), Nil())
	cons := MustCons(v)
	cons.SetCAR(Int(10))
	cons.SetCDR(Int(20))
	car, _ := GetCAR(v)
	cdr, _ := GetCDR(v)
	assert.True(t, Equal(Int(10), car))
	assert.True(t, Equal(Int(20), cdr))
}

func TestList(t *testing.T) {
	v := List()
	assert.True(t, IsNil(v))

	v = List(Int(1), Int(2), Int(3))
	n, ok := ConsLen(v)
	require.True(t, ok)
	assert.Equal(t, 3, n)
	elems, ok := SliceAll(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	for i := range elems {
		assert.True(t, Equal(Int(i+1), elems[i]))
	}
}

func TestConsLenImproper(t *testing.T) {
	_, ok := ConsLen(Cons(Int(1), Int(2)))
	assert.False(t, ok)
	_, ok = ConsLen(Int(1))
	assert.False(t, ok)
}

func TestListBuilder(t *testing.T) {
	b := &ListBuilder{}
	assert.True(t, IsNil(b.List()))
	b.Append(Int(1))
	b.Append(Int(2), Int(3))
	v := b.List()
	assert.True(t, Equal(List(Int(1), Int(2), Int(3)), v))
}

func TestListIterator(t *testing.T) {
	it := NewListIterator(List(Int(1), Int(2)))
	require.True(t, it.Next())
	assert.True(t, Equal(Int(1), it.Value()))
	require.True(t, it.Next())
	assert.True(t, Equal(Int(2), it.Value()))
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestListIteratorImproper(t *testing.T) {
	it := NewListIterator(Cons(Int(1), Int(2)))
	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.Error(t, it.Err())
}

func TestSliceAllImproper(t *testing.T) {
	_, ok := SliceAll(Cons(Int(1), Int(2)))
	assert.False(t, ok)
}
