package lisp

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/subscheme/symbol"
)

// ConsData is the container that backs LCons values.
type ConsData struct {
	CAR LVal
	CDR LVal
}

func makeCons(data *ConsData) LVal {
	return LVal{typ: LCons, Native: data}
}

// Cons returns a new LCons value from head and tail.  If tail is a list then
// Cons returns a list as well.
//	(cons head tail)
func Cons(head, tail LVal) LVal {
	return makeCons(&ConsData{CAR: head, CDR: tail})
}

// GetCAR returns the head of pair v.
// GetCAR returns false if v is not LCons.
func GetCAR(v LVal) (LVal, bool) {
	if v.typ != LCons {
		return Nil(), false
	}
	return v.Native.(*ConsData).CAR, true
}

// GetCDR returns the tail of pair v.
// GetCDR returns false if v is not LCons.
func GetCDR(v LVal) (LVal, bool) {
	if v.typ != LCons {
		return Nil(), false
	}
	return v.Native.(*ConsData).CDR, true
}

// GetConsData returns the ConsData backing v.
// GetConsData returns false if v is not LCons.
func GetConsData(v LVal) (*ConsData, bool) {
	if v.typ != LCons {
		return nil, false
	}
	return v.Native.(*ConsData), true
}

// List returns a list containing the given elements.
func List(v ...LVal) LVal {
	lis := Nil()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// ConsLen computes the length of list v.
// ConsLen returns false if v is not a list.
func ConsLen(v LVal) (int, bool) {
	n := 0
	for !IsNil(v) {
		if v.typ != LCons {
			return n, false
		}
		v = v.Native.(*ConsData).CDR
		n++
	}
	return n, true
}

// ConsVal wraps LCons values and provides convenience methods.
type ConsVal struct {
	v    LVal
	data *ConsData
}

func consVal(v LVal) ConsVal {
	return ConsVal{v: v, data: v.Native.(*ConsData)}
}

// GetCons returns a ConsVal for v.
// GetCons returns false if v is not LCons.
func GetCons(v LVal) (ConsVal, bool) {
	if v.typ != LCons {
		return ConsVal{}, false
	}
	return consVal(v), true
}

// MustCons wraps v as a ConsVal.
// MustCons panics if v.Type() is not LCons.
func MustCons(v LVal) ConsVal {
	if v.typ != LCons {
		panicf("not a cons: %v", v.typ)
	}
	return consVal(v)
}

// LVal returns an LVal containing the cons data.
func (v ConsVal) LVal() LVal {
	return v.v
}

// CAR returns the head of list v.
func (v ConsVal) CAR() LVal {
	return v.data.CAR
}

// SetCAR stores w in the CAR of v.
func (v ConsVal) SetCAR(w LVal) {
	v.data.CAR = w
}

// CDR returns the tail of list v.
func (v ConsVal) CDR() LVal {
	return v.data.CDR
}

// SetCDR stores w in the CDR of v.
func (v ConsVal) SetCDR(w LVal) {
	v.data.CDR = w
}

func (v ConsVal) equal(v2 ConsVal) bool {
	return Equal(v.data.CAR, v2.data.CAR) && Equal(v.data.CDR, v2.data.CDR)
}

func (v ConsVal) format(w io.Writer, t symbol.Table) (int, error) {
	b := &strings.Builder{}
	b.WriteString("(")
	for {
		_, err := Format(b, v.data.CAR, t)
		if err != nil {
			return 0, err
		}
		if IsNil(v.data.CDR) {
			break
		}
		if v.data.CDR.typ == LCons {
			b.WriteString(" ")
			v = consVal(v.data.CDR)
			continue
		}
		b.WriteString(" . ")
		_, err = Format(b, v.data.CDR, t)
		if err != nil {
			return 0, err
		}
		break
	}
	b.WriteString(")")
	return io.WriteString(w, b.String())
}

// ListBuilder builds cons lists front to back.
type ListBuilder struct {
	front LVal
	back  *ConsData
}

// List returns the cons list with the elements appended so far.  Appending
// more elements modifies the returned list in place.
func (b *ListBuilder) List() LVal {
	return b.front
}

// Append adds elements to the end of the list.
func (b *ListBuilder) Append(v ...LVal) {
	for i := range v {
		data := &ConsData{v[i], Nil()}
		if b.back == nil {
			b.front = makeCons(data)
		} else {
			b.back.CDR = makeCons(data)
		}
		b.back = data
	}
}

// ListIterator iterates through cons lists.
type ListIterator struct {
	v    LVal
	rest LVal
	err  error
}

// NewListIterator returns a ListIterator that will iterate through list v.
func NewListIterator(v LVal) *ListIterator {
	return &ListIterator{
		v:    Nil(),
		rest: v,
	}
}

// Value returns the iteration's current value.  Value returns LNil if Next
// has not been called.
func (it *ListIterator) Value() LVal {
	return it.v
}

// Rest returns any items remaining to be iterated over.
func (it *ListIterator) Rest() LVal {
	return it.rest
}

// Next advances the iterator to the next list element.  Next returns false
// if iteration terminated, either because the list had no more elements or
// because a non-list value was encountered.
func (it *ListIterator) Next() bool {
	if IsNil(it.rest) || it.err != nil {
		return false
	}
	if it.rest.typ != LCons {
		it.err = fmt.Errorf("not a list: %v", it.rest.typ)
		return false
	}
	data := it.rest.Native.(*ConsData)
	it.v = data.CAR
	it.rest = data.CDR
	return true
}

// Err returns a non-nil error if the iteration encountered a non-list value
// terminating the cons chain.
func (it *ListIterator) Err() error {
	return it.err
}

// SliceAll collects the list elements of v into a slice.  SliceAll returns
// false if v is not a list.
func SliceAll(v LVal) ([]LVal, bool) {
	var s []LVal
	it := NewListIterator(v)
	for it.Next() {
		s = append(s, it.Value())
	}
	if it.Err() != nil {
		return s, false
	}
	return s, true
}
