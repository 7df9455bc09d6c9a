package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cssvalue/internal/ast"
	"cssvalue/internal/source"
)

// CheckSpanInvariants runs span invariants on a value parsed from bounds inside sf:
// 1) every node span is non-empty, points at sf and lies within bounds
// 2) children nest inside their parent (function args, operation operands,
// number units, function names, operators)
// 3) values of one list, and lists themselves, appear in source order without overlap
func CheckSpanInvariants(v ast.CSSValue, sf *source.File, bounds source.Span) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if bounds.Start > bounds.End || bounds.End > lenContent {
		return fmt.Errorf("bounds %v outside content of %d bytes", bounds, lenContent)
	}

	var prevEnd uint32
	havePrev := false
	for li, list := range v {
		for vi, val := range list {
			sp := val.Span()
			if havePrev && sp.Start < prevEnd {
				return fmt.Errorf("list %d value %d span %v overlaps previous value ending at %d", li, vi, sp, prevEnd)
			}
			if err := checkNode(val, sf.ID, bounds); err != nil {
				return fmt.Errorf("list %d value %d: %w", li, vi, err)
			}
			prevEnd, havePrev = sp.End, true
		}
	}
	return nil
}

func checkNode(n ast.Node, file source.FileID, parent source.Span) error {
	sp := n.Span()
	if sp.End <= sp.Start {
		return fmt.Errorf("%s has empty span %v", n.Kind(), sp)
	}
	if sp.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", n.Kind(), sp.File, file)
	}
	if !parent.Contains(sp) {
		return fmt.Errorf("%s span %v is outside parent span %v", n.Kind(), sp, parent)
	}

	switch n := n.(type) {
	case *ast.Number:
		if n.HasUnit() && !sp.Contains(n.UnitLoc) {
			return fmt.Errorf("unit span %v outside number span %v", n.UnitLoc, sp)
		}
	case *ast.Function:
		if !sp.Contains(n.NameLoc) || n.NameLoc.Start != sp.Start {
			return fmt.Errorf("function name span %v does not start function span %v", n.NameLoc, sp)
		}
		prev := n.NameLoc.End
		for i, a := range n.Args {
			if a.Span().Start < prev {
				return fmt.Errorf("argument %d of %s() overlaps its predecessor", i, n.Name)
			}
			if err := checkNode(a, file, sp); err != nil {
				return err
			}
			prev = a.Span().End
		}
	case *ast.Operation:
		l, r := n.Left.Span(), n.Right.Span()
		if !(l.End <= n.OpLoc.Start && n.OpLoc.End <= r.Start) {
			return fmt.Errorf("operator %q span %v is not between operands %v and %v", n.Op, n.OpLoc, l, r)
		}
		if err := checkNode(n.Left, file, sp); err != nil {
			return err
		}
		return checkNode(n.Right, file, sp)
	}
	return nil
}
