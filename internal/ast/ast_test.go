package ast

import (
	"strings"
	"testing"

	"cssvalue/internal/token"
)

func num(lit, unit string) *Number { return &Number{Literal: lit, Unit: unit} }

func sample() CSSValue {
	// calc(10px + 20%) 'a\'b', #fff
	calc := &Function{
		Name: "calc",
		Args: []Expr{&Operation{Left: num("10", "px"), Op: "+", OpKind: token.Plus, Right: num("20", "%")}},
	}
	return CSSValue{
		{calc, &Quoted{Quote: token.QuoteSingle, Text: `a'b\`}},
		{&HashColor{Digits: "fff"}},
	}
}

func TestPrint(t *testing.T) {
	want := `calc(10px + 20%) 'a\'b\\', #fff`
	if got := sample().String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	var b strings.Builder
	if err := Print(&b, sample()); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if b.String() != want {
		t.Fatalf("Print = %q", b.String())
	}
}

func TestPrintEmptyLists(t *testing.T) {
	v := CSSValue{{&Word{Text: "blue"}}, {}, {&Word{Text: "red"}}}
	if got := v.String(); got != "blue, , red" {
		t.Fatalf("String() = %q", got)
	}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d", v.Len())
	}
}

func TestNestedOperationPrint(t *testing.T) {
	op := &Operation{
		Left: num("1", ""), Op: "*",
		Right: &Operation{Left: &Word{Text: "a"}, Op: "/", Right: &Function{Name: "f"}},
	}
	if got := op.String(); got != "1 * a / f()" {
		t.Fatalf("String() = %q", got)
	}
}

func TestWalkOrder(t *testing.T) {
	var kinds []string
	WalkValue(sample(), func(n Node) bool {
		kinds = append(kinds, n.Kind().String())
		return true
	})
	want := "Function Operation Number Number Quoted HashColor"
	if got := strings.Join(kinds, " "); got != want {
		t.Fatalf("walk order = %q, want %q", got, want)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	count := 0
	WalkValue(sample(), func(n Node) bool {
		count++
		return n.Kind() != KindFunction
	})
	if count != 3 {
		t.Fatalf("visited %d nodes, want 3", count)
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := sample()
	b := sample()
	b[1][0].(*HashColor).Loc.Start = 99
	if !Equal(a, b) {
		t.Fatal("spans must not affect equality")
	}
	b[0][0].(*Function).Args[0].(*Operation).Op = "-"
	if Equal(a, b) {
		t.Fatal("different operators must not be equal")
	}
	if Equal(a, a[:1]) {
		t.Fatal("different list counts must not be equal")
	}
}

func TestNumberHelpers(t *testing.T) {
	tests := []struct {
		lit     string
		unit    string
		want    float64
		percent bool
	}{
		{"-3e3", "", -3000, false},
		{"+.2e-23", "", 0.2e-23, false},
		{"50", "%", 50, true},
		{"255.5", "px", 255.5, false},
	}
	for _, tt := range tests {
		n := num(tt.lit, tt.unit)
		f, err := n.Float()
		if err != nil || f != tt.want {
			t.Errorf("Float(%q) = %v, %v", tt.lit, f, err)
		}
		if n.IsPercent() != tt.percent || n.HasUnit() != (tt.unit != "") {
			t.Errorf("unit helpers wrong for %q%q", tt.lit, tt.unit)
		}
	}
}

func TestHashHasAlpha(t *testing.T) {
	for digits, want := range map[string]bool{"fff": false, "ffff": true, "ffffff": false, "ffffff80": true} {
		if got := (&HashColor{Digits: digits}).HasAlpha(); got != want {
			t.Errorf("HasAlpha(%s) = %v", digits, got)
		}
	}
}

func TestIsPrimitive(t *testing.T) {
	if IsPrimitive(&Function{Name: "f"}) {
		t.Fatal("function is not a primitive")
	}
	if !IsPrimitive(&Word{Text: "x"}) {
		t.Fatal("word is a primitive")
	}
}
