package ast

import (
	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

// NodeKind enumerates the value node variants.
type NodeKind uint8

const (
	// KindWord is a bare identifier such as "red" or "--x".
	KindWord NodeKind = iota
	// KindNumber is a numeric literal with an optional unit.
	KindNumber
	// KindHashColor is a "#rgb"-style color.
	KindHashColor
	// KindQuoted is a quoted string.
	KindQuoted
	// KindFunction is a function call.
	KindFunction
	// KindOperation is a binary infix operation.
	KindOperation
)

var nodeKindNames = [...]string{
	KindWord:      "Word",
	KindNumber:    "Number",
	KindHashColor: "HashColor",
	KindQuoted:    "Quoted",
	KindFunction:  "Function",
	KindOperation: "Operation",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Node is implemented by every value node.
type Node interface {
	Kind() NodeKind
	Span() source.Span
	String() string
}

// Expr is a Value or an *Operation.
type Expr interface {
	Node
	exprNode()
}

// Value is a primitive or a function call: anything that may stand in a ValueList.
type Value interface {
	Expr
	valueNode()
}

type Word struct {
	Text string
	Loc  source.Span
}

// Number keeps the literal exactly as written ("-3e3", "+.2e-23").
// Unit is empty, a word ("px") or "%".
type Number struct {
	Literal string
	Unit    string
	Loc     source.Span
	UnitLoc source.Span
}

// HashColor holds the hex digits without '#'; the parser only builds it for
// 3, 4, 6 or 8 digits.
type HashColor struct {
	Digits string
	Loc    source.Span
}

// Quoted holds the unescaped text and the delimiter it was written with.
type Quoted struct {
	Quote token.QuoteKind
	Text  string
	Loc   source.Span
}

type Function struct {
	Name    string
	Args    []Expr
	Loc     source.Span
	NameLoc source.Span
}

// Operation is "Left Op Right". Chains nest to the right:
// "a + b * c" is Operation{a, +, Operation{b, *, c}}.
type Operation struct {
	Left   Value
	Op     string
	OpKind token.Kind
	Right  Expr
	Loc    source.Span
	OpLoc  source.Span
}

// ValueList is one comma-delimited group of space-separated values.
type ValueList []Value

// CSSValue is the parse result: one ValueList per top-level comma group.
type CSSValue []ValueList

func (*Word) Kind() NodeKind      { return KindWord }
func (*Number) Kind() NodeKind    { return KindNumber }
func (*HashColor) Kind() NodeKind { return KindHashColor }
func (*Quoted) Kind() NodeKind    { return KindQuoted }
func (*Function) Kind() NodeKind  { return KindFunction }
func (*Operation) Kind() NodeKind { return KindOperation }

func (n *Word) Span() source.Span      { return n.Loc }
func (n *Number) Span() source.Span    { return n.Loc }
func (n *HashColor) Span() source.Span { return n.Loc }
func (n *Quoted) Span() source.Span    { return n.Loc }
func (n *Function) Span() source.Span  { return n.Loc }
func (n *Operation) Span() source.Span { return n.Loc }

func (*Word) exprNode()      {}
func (*Number) exprNode()    {}
func (*HashColor) exprNode() {}
func (*Quoted) exprNode()    {}
func (*Function) exprNode()  {}
func (*Operation) exprNode() {}

func (*Word) valueNode()      {}
func (*Number) valueNode()    {}
func (*HashColor) valueNode() {}
func (*Quoted) valueNode()    {}
func (*Function) valueNode()  {}
