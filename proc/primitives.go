package proc

import (
	"fmt"

	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// Defaults is the standard primitive table.  Primitives check their own
// arity and argument types and report violations as ordinary errors.
var Defaults = map[string]Fn{
	"type":    primType,
	"cons":    primCons,
	"car":     primCAR,
	"cdr":     primCDR,
	"list":    primList,
	"null?":   primIsNull,
	"pair?":   primIsPair,
	"not":     primNot,
	"equal?":  primEqual,
	"display": primDisplay,
	"=":       compare(func(x, y float64) bool { return x == y }),
	"<":       compare(func(x, y float64) bool { return x < y }),
	"<=":      compare(func(x, y float64) bool { return x <= y }),
	">":       compare(func(x, y float64) bool { return x > y }),
	">=":      compare(func(x, y float64) bool { return x >= y }),
	"+":       primAdd,
	"-":       primSub,
	"*":       primMul,
}

func errNumArgs(want, got int) error {
	return fmt.Errorf("requires %d arguments (got %d)", want, got)
}

func primType(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 1 {
		return lisp.Nil(), errNumArgs(1, len(args))
	}
	return lisp.GetType(args[0]), nil
}

func primCons(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 2 {
		return lisp.Nil(), errNumArgs(2, len(args))
	}
	return lisp.Cons(args[0], args[1]), nil
}

func primCAR(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 1 {
		return lisp.Nil(), errNumArgs(1, len(args))
	}
	v, ok := lisp.GetCAR(args[0])
	if !ok {
		return lisp.Nil(), fmt.Errorf("argument is not a pair: %v", args[0].Type())
	}
	return v, nil
}

func primCDR(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 1 {
		return lisp.Nil(), errNumArgs(1, len(args))
	}
	v, ok := lisp.GetCDR(args[0])
	if !ok {
		return lisp.Nil(), fmt.Errorf("argument is not a pair: %v", args[0].Type())
	}
	return v, nil
}

func primList(args []lisp.LVal) (lisp.LVal, error) {
	return lisp.List(args...), nil
}

func primIsNull(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 1 {
		return lisp.Nil(), errNumArgs(1, len(args))
	}
	return lisp.Bool(lisp.IsNil(args[0])), nil
}

func primIsPair(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 1 {
		return lisp.Nil(), errNumArgs(1, len(args))
	}
	return lisp.Bool(args[0].Type() == lisp.LCons), nil
}

func primNot(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 1 {
		return lisp.Nil(), errNumArgs(1, len(args))
	}
	return lisp.Bool(!lisp.IsTrue(args[0])), nil
}

func primEqual(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) != 2 {
		return lisp.Nil(), errNumArgs(2, len(args))
	}
	return lisp.Bool(lisp.Equal(args[0], args[1])), nil
}

func primDisplay(args []lisp.LVal) (lisp.LVal, error) {
	for i := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		if s, ok := lisp.GetString(args[i]); ok {
			fmt.Print(s)
			continue
		}
		fmt.Print(lisp.FormatString(args[i], symbol.DefaultGlobalTable))
	}
	fmt.Println()
	return lisp.Nil(), nil
}

func numFloat(v lisp.LVal) (float64, bool) {
	if x, ok := lisp.GetFloat(v); ok {
		return x, true
	}
	if x, ok := lisp.GetInt(v); ok {
		return float64(x), true
	}
	return 0, false
}

func twoInts(x, y lisp.LVal) bool {
	return x.Type() == lisp.LInt && y.Type() == lisp.LInt
}

func compare(fn func(x, y float64) bool) Fn {
	return func(args []lisp.LVal) (lisp.LVal, error) {
		if len(args) != 2 {
			return lisp.Nil(), errNumArgs(2, len(args))
		}
		x, ok := numFloat(args[0])
		if !ok {
			return lisp.Nil(), fmt.Errorf("first argument is not a number: %v", args[0].Type())
		}
		y, ok := numFloat(args[1])
		if !ok {
			return lisp.Nil(), fmt.Errorf("second argument is not a number: %v", args[1].Type())
		}
		return lisp.Bool(fn(x, y)), nil
	}
}

// arith folds an integer operation over args, switching to float arithmetic
// if any argument is a float.
func arith(args []lisp.LVal, init int, intOp func(x, y int) int, floatOp func(x, y float64) float64) (lisp.LVal, error) {
	x := init
	for i := range args {
		if args[i].Type() == lisp.LFloat {
			return arithFloat(args, i, float64(x), floatOp)
		}
		xi, ok := lisp.GetInt(args[i])
		if !ok {
			return lisp.Nil(), fmt.Errorf("argument is not a number: %v", args[i].Type())
		}
		x = intOp(x, xi)
	}
	return lisp.Int(x), nil
}

func arithFloat(args []lisp.LVal, i int, x float64, floatOp func(x, y float64) float64) (lisp.LVal, error) {
	for ; i < len(args); i++ {
		xi, ok := numFloat(args[i])
		if !ok {
			return lisp.Nil(), fmt.Errorf("argument is not a number: %v", args[i].Type())
		}
		x = floatOp(x, xi)
	}
	return lisp.Float(x), nil
}

func primAdd(args []lisp.LVal) (lisp.LVal, error) {
	return arith(args, 0,
		func(x, y int) int { return x + y },
		func(x, y float64) float64 { return x + y })
}

func primSub(args []lisp.LVal) (lisp.LVal, error) {
	if len(args) == 0 {
		return lisp.Int(0), nil
	}
	if len(args) == 1 {
		if x, ok := lisp.GetInt(args[0]); ok {
			return lisp.Int(-x), nil
		}
		if x, ok := lisp.GetFloat(args[0]); ok {
			return lisp.Float(-x), nil
		}
		return lisp.Nil(), fmt.Errorf("argument is not a number: %v", args[0].Type())
	}
	first := args[0]
	if x, ok := lisp.GetInt(first); ok {
		return arith(args[1:], x,
			func(x, y int) int { return x - y },
			func(x, y float64) float64 { return x - y })
	}
	x, ok := lisp.GetFloat(first)
	if !ok {
		return lisp.Nil(), fmt.Errorf("argument is not a number: %v", first.Type())
	}
	return arithFloat(args[1:], 0, x, func(x, y float64) float64 { return x - y })
}

func primMul(args []lisp.LVal) (lisp.LVal, error) {
	return arith(args, 1,
		func(x, y int) int { return x * y },
		func(x, y float64) float64 { return x * y })
}
