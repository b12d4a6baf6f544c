// Package lisp defines the symbolic expression values manipulated by the
// evaluator.  Expressions are untyped trees: literals, symbols, and cons
// lists.  There is no separate syntax tree; the evaluator consumes these
// values directly.
package lisp

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bmatsuo/subscheme/symbol"
)

// LType enumerates the kinds of LVal.
type LType uint8

const (
	// LNil is the absence of a value and also acts as the empty list.
	LNil LType = iota
	// LSymbol is a symbolic name.
	// Schema:
	//	Data: symbol.ID value
	LSymbol
	// LString is a go string value.
	// Schema:
	//	Native: string value
	LString
	// LInt is a go int value.
	// Schema:
	//	Data: int value
	LInt
	// LFloat is a go float64 value.
	// Schema:
	//	Data: float64 bits
	LFloat
	// LBool is a boolean value.
	// Schema:
	//	Data: 0x0 if false and 1 otherwise
	LBool
	// LCons is a container that forms a linked list terminated by LNil.
	// Schema:
	//	Native: *ConsData
	LCons
	// LTaggedVal wraps native go data (e.g. procedures).
	// Schema:
	//	Data: symbol.ID value (type name)
	//	Native: native data
	LTaggedVal
)

var typeSymbols = []symbol.ID{
	LNil:       symbol.Intern("nil"),
	LSymbol:    symbol.Intern("symbol"),
	LString:    symbol.Intern("string"),
	LInt:       symbol.Intern("int"),
	LFloat:     symbol.Intern("float"),
	LBool:      symbol.Intern("bool"),
	LCons:      symbol.Intern("pair"),
	LTaggedVal: symbol.Intern("tagged-value"),
}

func (t LType) String() string {
	if int(t) < len(typeSymbols) {
		return typeSymbols[t].String()
	}
	return fmt.Sprintf("#<type %d>", uint8(t))
}

// LVal is a lisp value.  The zero LVal is a valid LNil value.
type LVal struct {
	typ    LType
	Data   uint64
	Native interface{}
}

var lnil = LVal{}

// Type returns the type of v.
func (v LVal) Type() LType {
	return v.typ
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// GetType returns a symbol representing the type of v.
func GetType(v LVal) LVal {
	if v.typ == LTaggedVal {
		return Symbol(symbol.ID(v.Data))
	}
	return Symbol(typeSymbols[v.typ])
}

// Nil returns an LNil value.
func Nil() LVal {
	return lnil
}

// IsNil returns true if v is LNil.
func IsNil(v LVal) bool {
	return v.typ == LNil
}

// Int returns an LInt value.
func Int(x int) LVal {
	return LVal{typ: LInt, Data: uint64(x)}
}

// GetInt returns the int value from v.
// GetInt returns false if v is not LInt.
func GetInt(v LVal) (int, bool) {
	if v.typ != LInt {
		return 0, false
	}
	return int(v.Data), true
}

// Float returns an LFloat value.
func Float(x float64) LVal {
	return LVal{typ: LFloat, Data: math.Float64bits(x)}
}

// GetFloat returns the float64 value from v.
// GetFloat returns false if v is not LFloat.
func GetFloat(v LVal) (float64, bool) {
	if v.typ != LFloat {
		return 0, false
	}
	return math.Float64frombits(v.Data), true
}

// Bool returns an LBool with the truth value of ok.
func Bool(ok bool) LVal {
	if ok {
		return True()
	}
	return False()
}

// True returns a true LBool value.
func True() LVal {
	return LVal{typ: LBool, Data: 1}
}

// False returns a false LBool value.
func False() LVal {
	return LVal{typ: LBool}
}

// GetBool returns the truth value of v.
// GetBool returns false if v is not LBool.
func GetBool(v LVal) (bool, bool) {
	if v.typ != LBool {
		return false, false
	}
	return v.Data != 0, true
}

// IsTrue returns true iff v represents a true value.  The boolean false is
// the only false value -- zero, the empty list, and every other value count
// as true.
func IsTrue(v LVal) bool {
	return !(v.typ == LBool && v.Data == 0)
}

// Symbol returns an LSymbol value.
func Symbol(id symbol.ID) LVal {
	return LVal{typ: LSymbol, Data: uint64(id)}
}

// GetSymbol extracts the symbol.ID from v.  GetSymbol returns false if v is
// not an LSymbol.
func GetSymbol(v LVal) (symbol.ID, bool) {
	if v.typ != LSymbol {
		return 0, false
	}
	return symbol.ID(v.Data), true
}

// IsSymbol returns true if v is the symbol identified by id.
func IsSymbol(v LVal, id symbol.ID) bool {
	return v.typ == LSymbol && symbol.ID(v.Data) == id
}

// String returns an LString value.
func String(str string) LVal {
	return LVal{typ: LString, Native: str}
}

// GetString extracts string data from v.  GetString returns false if v is
// not an LString.
func GetString(v LVal) (string, bool) {
	if v.typ != LString {
		return "", false
	}
	return v.Native.(string), true
}

// TagNative wraps native go data as an LTaggedVal with the user-defined type
// usertype.  The symbol usertype must be interned in the symbol table used
// to format the returned value.
func TagNative(usertype symbol.ID, data interface{}) LVal {
	return LVal{typ: LTaggedVal, Data: uint64(usertype), Native: data}
}

// UserType returns the user-defined type of v as a symbol.
// UserType returns false if v is not LTaggedVal.
func UserType(v LVal) (symbol.ID, bool) {
	if v.typ != LTaggedVal {
		return 0, false
	}
	return symbol.ID(v.Data), true
}

var primitiveType = map[LType]bool{
	LNil:    true,
	LSymbol: true,
	LInt:    true,
	LFloat:  true,
	LBool:   true,
}

// Equal returns true if v1 is structurally identical to v2.  Tagged values
// compare by identity of their native data, which is expected to be a
// pointer (procedures and environments are).
func Equal(v1 LVal, v2 LVal) bool {
	if v1.typ != v2.typ {
		return false
	}
	if primitiveType[v1.typ] {
		return v1.Data == v2.Data
	}
	switch v1.typ {
	case LString:
		return v1.Native.(string) == v2.Native.(string)
	case LCons:
		return consVal(v1).equal(consVal(v2))
	case LTaggedVal:
		return v1.Data == v2.Data && v1.Native == v2.Native
	default:
		return false
	}
}

// Format writes a source-code representation of v using table to resolve
// symbol names.
func Format(w io.Writer, v LVal, table symbol.Table) (int, error) {
	switch v.typ {
	case LNil:
		return io.WriteString(w, "()")
	case LSymbol:
		id, _ := GetSymbol(v)
		sym, ok := table.Symbol(id)
		if !ok {
			return 0, fmt.Errorf("uninterned symbol: %v", uint64(id))
		}
		return io.WriteString(w, sym)
	case LString:
		s, _ := GetString(v)
		return fmt.Fprintf(w, "%q", s)
	case LInt:
		x, _ := GetInt(v)
		return fmt.Fprint(w, x)
	case LFloat:
		x, _ := GetFloat(v)
		return fmt.Fprint(w, x)
	case LBool:
		b, _ := GetBool(v)
		if b {
			return io.WriteString(w, "true")
		}
		return io.WriteString(w, "false")
	case LCons:
		return consVal(v).format(w, table)
	case LTaggedVal:
		typ, _ := UserType(v)
		name, ok := table.Symbol(typ)
		if !ok {
			name = fmt.Sprintf("#<symbol %#x>", uint64(typ))
		}
		return fmt.Fprintf(w, "#<%s>", name)
	default:
		return 0, fmt.Errorf("unrecognized type: %v", v.typ)
	}
}

// FormatString renders v as a string using table to resolve symbol names.
// Formatting failures render as a diagnostic placeholder.
func FormatString(v LVal, table symbol.Table) string {
	w := &strings.Builder{}
	_, err := Format(w, v, table)
	if err != nil {
		return fmt.Sprintf("#<unformattable %v>", err)
	}
	return w.String()
}
