/*
Package parser reads source text into lisp values.

	expr   := '(' <expr>* ')' | '\'' <expr> | <number> | <string> | <symbol>
	number := /[+-]?[0-9]+/ <fraction>? <exponent>?
	fraction := '.' /[0-9]+/
	exponent := e /[0-9]+/
	string := '"' <strcontent> '"'
	strcontent := /[^"]+/ | '\' '"'

A quoted expression 'x reads as the list (quote x); the reader has no
distinct quoted value type.
*/
package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
	parsec "github.com/prataprc/goparsec"
)

// Parser reads expressions, interning symbols into its table.
type Parser struct {
	table symbol.Table
	expr  parsec.Parser
}

// New returns a Parser interning symbols into table.
func New(table symbol.Table) *Parser {
	p := &Parser{table: table}
	p.expr = p.newParsecParser()
	return p
}

// ParseLVal parses values from text and returns them.  The number of bytes
// read is returned along with any error that was encountered in parsing.
// Incomplete input is reported as io.ErrUnexpectedEOF.
func (p *Parser) ParseLVal(text []byte) ([]lisp.LVal, int, error) {
	var vals []lisp.LVal
	s := parsec.NewScanner(text)
	root, s := p.expr(s)
	for root != nil {
		res, ok := getResult(root)
		if ok {
			if res.err != nil {
				return vals, s.GetCursor(), res.err
			}
			vals = append(vals, res.v)
		}
		root, s = p.expr(s)
	}
	if !s.Endof() {
		return vals, s.GetCursor(), io.ErrUnexpectedEOF
	}
	return vals, s.GetCursor(), nil
}

// ParseString parses values from source text given as a string.
func (p *Parser) ParseString(text string) ([]lisp.LVal, error) {
	vals, _, err := p.ParseLVal([]byte(text))
	return vals, err
}

func (p *Parser) newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	decimal := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "DECIMAL")
	sym := parsec.Token(`(?:\pL|[_+\-*/\=<>!&~%?.])(?:\pL|[0-9]|[_+\-*/\=<>!&~%?.])*`, "SYMBOL")
	term := parsec.OrdChoice(p.astTerm, // terminal token
		parsec.String(),
		decimal,
		sym, // symbol comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(p.astSExpr, openP, exprList, closeP)
	qexpr := parsec.And(p.astQExpr, q, &expr)
	expr = parsec.OrdChoice(nil, comment, term, sexpr, qexpr)
	return expr
}

// result wraps a parsed value so it can travel through parsec's untyped
// node lists.
type result struct {
	v   lisp.LVal
	err error
}

func (p *Parser) astTerm(nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch term := nodes[0].(type) {
	case string:
		s, err := strconv.Unquote(term)
		if err != nil {
			return &result{err: fmt.Errorf("bad string literal: %v (%s)", err, term)}
		}
		return &result{v: lisp.String(s)}
	case *parsec.Terminal:
		switch term.Name {
		case "DECIMAL":
			if strings.ContainsAny(term.Value, ".eE") {
				f, err := strconv.ParseFloat(term.Value, 64)
				if err != nil {
					return &result{err: fmt.Errorf("bad number: %v (%s)", err, term.Value)}
				}
				return &result{v: lisp.Float(f)}
			}
			x, err := strconv.Atoi(term.Value)
			if err != nil {
				return &result{err: fmt.Errorf("bad number: %v (%s)", err, term.Value)}
			}
			return &result{v: lisp.Int(x)}
		case "SYMBOL":
			return &result{v: lisp.Symbol(p.table.Intern(term.Value))}
		}
	}
	return &result{err: fmt.Errorf("unexpected token: %v", nodes[0])}
}

func (p *Parser) astSExpr(nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	b := &lisp.ListBuilder{}
	// We don't want terminal parsec nodes '(' and ')'
	for _, c := range nodes {
		if res, ok := c.(*result); ok {
			if res.err != nil {
				return res
			}
			b.Append(res.v)
		}
	}
	return &result{v: b.List()}
}

func (p *Parser) astQExpr(nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	res, ok := nodes[1].(*result)
	if !ok {
		return &result{err: fmt.Errorf("quote is not followed by an expression")}
	}
	if res.err != nil {
		return res
	}
	return &result{v: lisp.List(lisp.Symbol(p.table.Intern("quote")), res.v)}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getResult(root parsec.ParsecNode) (*result, bool) {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil, false
	}
	res, ok := nodes[0].(*result)
	if !ok {
		// we can be here if there is only a comment on a line
		return nil, false
	}
	return res, true
}
