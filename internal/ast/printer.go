package ast

import (
	"io"
	"strings"
)

// Print writes the canonical rendering of v: lists joined by ", ", values by
// a single space, operators surrounded by single spaces. Parsing the output
// yields a tree Equal to v.
func Print(w io.Writer, v CSSValue) error {
	_, err := io.WriteString(w, v.String())
	return err
}

func (c CSSValue) String() string {
	var b strings.Builder
	for i, l := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		l.write(&b)
	}
	return b.String()
}

func (l ValueList) String() string {
	var b strings.Builder
	l.write(&b)
	return b.String()
}

func (l ValueList) write(b *strings.Builder) {
	for i, v := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeNode(b, v)
	}
}

func (n *Word) String() string      { return n.Text }
func (n *Number) String() string    { return n.Literal + n.Unit }
func (n *HashColor) String() string { return "#" + n.Digits }

func (n *Quoted) String() string {
	var b strings.Builder
	writeQuoted(&b, n)
	return b.String()
}

func (n *Function) String() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func (n *Operation) String() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Function:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, a)
		}
		b.WriteByte(')')
	case *Operation:
		writeNode(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op)
		b.WriteByte(' ')
		writeNode(b, n.Right)
	case *Quoted:
		writeQuoted(b, n)
	default:
		b.WriteString(n.String())
	}
}

// writeQuoted re-escapes every backslash and the delimiter, which is the
// inverse of the lexer's unescaping.
func writeQuoted(b *strings.Builder, n *Quoted) {
	q := n.Quote.Delim()
	b.WriteByte(q)
	for i := 0; i < len(n.Text); i++ {
		c := n.Text[i]
		if c == '\\' || c == q {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(q)
}
