package evaltest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"literals", TestSequence{
			{"3", "3"},
			{"-7", "-7"},
			{"1.5", "1.5"},
			{`"hello"`, `"hello"`},
			{"true", "true"},
			{"false", "false"},
			{"()", "()"},
		}},
		{"quotes", TestSequence{
			{"'3", "3"},
			{"'x", "x"},
			{"'()", "()"},
			{"'(1 2 3)", "(1 2 3)"},
			{"''x", "(quote x)"},
		}},
		{"symbols", TestSequence{
			{"a", "unbound variable: a"},
			{"(define a 1)", "()"},
			{"a", "1"},
		}},
		{"assignment", TestSequence{
			{"(define x 1)", "()"},
			{"(set! x 2)", "()"},
			{"x", "2"},
			{"(set! y 3)", "unbound variable: y"},
		}},
		{"function basics", TestSequence{
			{"(lambda (x) x)", "#<compound-procedure>"},
			{"((lambda (x) x) 1)", "1"},
			{"((lambda () (+ 1 1)))", "2"},
			{"((lambda (n) (+ n 1)) 1)", "2"},
			{"((lambda (x y) (+ x y)) 1 2)", "3"},
			{"((lambda (x) x) 1 2)", "wrong number of arguments: expected 1 (got 2)"},
			{"((lambda (x y) x) 1)", "wrong number of arguments: expected 2 (got 1)"},
			{"(1 2)", "not a procedure: 1"},
		}},
		{"closures", TestSequence{
			{"(define adder (lambda (n) (lambda (x) (+ x n))))", "()"},
			{"(define add5 (adder 5))", "()"},
			{"(add5 3)", "8"},
			{"((adder 2) 3)", "5"},
		}},
		{"define sugar", TestSequence{
			{"(define (square x) (* x x))", "()"},
			{"(square 4)", "16"},
			{"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))", "()"},
			{"(fact 5)", "120"},
		}},
		{"conditionals", TestSequence{
			{"(if true 1 2)", "1"},
			{"(if false 1 2)", "2"},
			{"(if 0 1 2)", "1"},
			{"(if '() 1 2)", "1"},
			{"(if false 1)", "false"},
			{"(if true 1 unbound)", "1"},
		}},
		{"cond", TestSequence{
			{"(cond (false 1) (else 2))", "2"},
			{"(cond (true 1) (else 2))", "1"},
			{"(cond (false 1))", "false"},
			{"(define x 1)", "()"},
			{"(cond (true (set! x 2) x))", "2"},
			{"(cond (unbound 1) (else 2) (true 3))", "cond: else clause must be last"},
		}},
		{"begin", TestSequence{
			{"(define x 1)", "()"},
			{"(begin (set! x 2) (+ x 1))", "3"},
		}},
		{"lists", TestSequence{
			{"(cons 1 2)", "(1 . 2)"},
			{"(cons 1 (cons 2 (cons 3 '())))", "(1 2 3)"},
			{"(list 1 2 3)", "(1 2 3)"},
			{"(car '(1 2 3))", "1"},
			{"(cdr '(1 2 3))", "(2 3)"},
			{"(null? '())", "true"},
			{"(null? '(1))", "false"},
			{"(pair? '(1))", "true"},
			{"(pair? 1)", "false"},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2 3)", "6"},
			{"(- 10 1 2)", "7"},
			{"(* 2 3 4)", "24"},
			{"(+ 1 2.5)", "3.5"},
			{"(= 1 1)", "true"},
			{"(< 1 2)", "true"},
			{"(>= 2 2)", "true"},
		}},
		{"predicates", TestSequence{
			{"(not false)", "true"},
			{"(not 0)", "false"},
			{"(equal? '(1 2) '(1 2))", "true"},
			{"(equal? '(1 2) '(1 3))", "false"},
		}},
		{"recursion", TestSequence{
			{"(define (len lst) (if (null? lst) 0 (+ 1 (len (cdr lst)))))", "()"},
			{"(len '(a b c d))", "4"},
			{"(define (map f lst) (if (null? lst) '() (cons (f (car lst)) (map f (cdr lst)))))", "()"},
			{"(map (lambda (x) (* x x)) '(1 2 3))", "(1 4 9)"},
		}},
		{"lexical scope", TestSequence{
			{"(define x 1)", "()"},
			{"(define (get-x) x)", "()"},
			{"((lambda (x) (get-x)) 99)", "1"},
			{"(define (bump!) (set! x (+ x 1)))", "()"},
			{"(bump!)", "()"},
			{"x", "2"},
		}},
	}
	RunTestSuite(t, tests)
}
