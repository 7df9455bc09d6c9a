package ast

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Function:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case *Operation:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}

// WalkValue walks every value of every list in order.
func WalkValue(v CSSValue, fn func(Node) bool) {
	for _, l := range v {
		for _, n := range l {
			Walk(n, fn)
		}
	}
}

// Equal reports whether a and b have the same structure and text, ignoring spans.
func Equal(a, b CSSValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !EqualNode(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

// EqualNode compares two nodes ignoring spans.
func EqualNode(a, b Node) bool {
	switch x := a.(type) {
	case *Word:
		y, ok := b.(*Word)
		return ok && x.Text == y.Text
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Literal == y.Literal && x.Unit == y.Unit
	case *HashColor:
		y, ok := b.(*HashColor)
		return ok && x.Digits == y.Digits
	case *Quoted:
		y, ok := b.(*Quoted)
		return ok && x.Quote == y.Quote && x.Text == y.Text
	case *Function:
		y, ok := b.(*Function)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !EqualNode(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Operation:
		y, ok := b.(*Operation)
		return ok && x.Op == y.Op && EqualNode(x.Left, y.Left) && EqualNode(x.Right, y.Right)
	}
	return false
}
