package ast

import "strconv"

// HasUnit reports whether the number carries a unit or a percent sign.
func (n *Number) HasUnit() bool { return n.Unit != "" }

// IsPercent reports whether the unit is "%".
func (n *Number) IsPercent() bool { return n.Unit == "%" }

// Float parses the literal. Units are not applied.
func (n *Number) Float() (float64, error) {
	return strconv.ParseFloat(n.Literal, 64)
}

// HasAlpha reports whether the color carries an alpha channel (#rgba, #rrggbbaa).
func (h *HashColor) HasAlpha() bool {
	return len(h.Digits) == 4 || len(h.Digits) == 8
}

// IsPrimitive reports whether v is a primitive rather than a function call.
func IsPrimitive(v Value) bool {
	_, isFn := v.(*Function)
	return !isFn
}

// Len returns the total number of values across all lists.
func (c CSSValue) Len() int {
	n := 0
	for _, l := range c {
		n += len(l)
	}
	return n
}
