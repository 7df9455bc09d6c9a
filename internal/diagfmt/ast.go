package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"cssvalue/internal/ast"
	"cssvalue/internal/source"
)

// ASTNodeOutput is the serialisable form of a value tree shared by the
// JSON and msgpack dumps.
type ASTNodeOutput struct {
	Type     string            `json:"type" msgpack:"type"`
	Span     source.Span       `json:"span" msgpack:"span"`
	Text     string            `json:"text,omitempty" msgpack:"text,omitempty"`
	Fields   map[string]string `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Children []ASTNodeOutput   `json:"children,omitempty" msgpack:"children,omitempty"`
}

// BuildASTOutput converts a parsed value into its dump form.
func BuildASTOutput(v ast.CSSValue) ASTNodeOutput {
	root := ASTNodeOutput{Type: "CSSValue"}
	covered := false
	for _, list := range v {
		ln := ASTNodeOutput{Type: "ValueList", Span: listSpan(list)}
		for _, n := range list {
			ln.Children = append(ln.Children, nodeOutput(n))
		}
		switch {
		case len(list) == 0:
		case !covered:
			root.Span, covered = ln.Span, true
		default:
			root.Span = root.Span.Cover(ln.Span)
		}
		root.Children = append(root.Children, ln)
	}
	return root
}

func nodeOutput(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Type: n.Kind().String(), Span: n.Span()}
	switch n := n.(type) {
	case *ast.Word:
		out.Text = n.Text
	case *ast.Number:
		out.Text = n.String()
		out.Fields = map[string]string{"literal": n.Literal}
		if n.HasUnit() {
			out.Fields["unit"] = n.Unit
		}
	case *ast.HashColor:
		out.Text = n.String()
		out.Fields = map[string]string{"digits": n.Digits}
	case *ast.Quoted:
		out.Text = n.Text
		out.Fields = map[string]string{"quote": n.Quote.String()}
	case *ast.Function:
		out.Fields = map[string]string{"name": n.Name, "args": strconv.Itoa(len(n.Args))}
		for _, a := range n.Args {
			out.Children = append(out.Children, nodeOutput(a))
		}
	case *ast.Operation:
		out.Fields = map[string]string{"op": n.Op}
		out.Children = append(out.Children, nodeOutput(n.Left), nodeOutput(n.Right))
	}
	return out
}

// listSpan covers all values of the list; empty lists get a zero span.
func listSpan(l ast.ValueList) source.Span {
	if len(l) == 0 {
		return source.Span{}
	}
	sp := l[0].Span()
	for _, v := range l[1:] {
		sp = sp.Cover(v.Span())
	}
	return sp
}

// FormatASTPretty prints the tree with box-drawing branches and resolved spans.
func FormatASTPretty(w io.Writer, v ast.CSSValue, fs *source.FileSet) error {
	if _, err := fmt.Fprintf(w, "CSSValue (lists: %d)\n", len(v)); err != nil {
		return err
	}
	for i, list := range v {
		branch, prefix := branchFor(i == len(v)-1)
		fmt.Fprintf(w, "%sList[%d] (values: %d)\n", branch, i, len(list))
		for j, n := range list {
			formatNodePretty(w, n, fs, prefix, j == len(list)-1)
		}
	}
	return nil
}

func formatNodePretty(w io.Writer, n ast.Node, fs *source.FileSet, prefix string, last bool) {
	branch, childPrefix := branchFor(last)
	fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, nodeLabel(n), formatSpan(n.Span(), fs))
	var children []ast.Node
	switch n := n.(type) {
	case *ast.Function:
		for _, a := range n.Args {
			children = append(children, a)
		}
	case *ast.Operation:
		children = []ast.Node{n.Left, n.Right}
	}
	for i, c := range children {
		formatNodePretty(w, c, fs, prefix+childPrefix, i == len(children)-1)
	}
}

func branchFor(last bool) (branch, prefix string) {
	if last {
		return "└─ ", "   "
	}
	return "├─ ", "│  "
}

func nodeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Function:
		return fmt.Sprintf("Function %s", n.Name)
	case *ast.Operation:
		return fmt.Sprintf("Operation %s", n.Op)
	default:
		return fmt.Sprintf("%s %s", n.Kind(), n.String())
	}
}

// FormatASTJSON выводит дерево в JSON формате
func FormatASTJSON(w io.Writer, v ast.CSSValue) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(v))
}

// FormatASTMsgpack пишет дерево в бинарном msgpack виде.
func FormatASTMsgpack(w io.Writer, v ast.CSSValue) error {
	return msgpack.NewEncoder(w).Encode(BuildASTOutput(v))
}

// DecodeASTMsgpack reads back a FormatASTMsgpack dump.
func DecodeASTMsgpack(r io.Reader) (ASTNodeOutput, error) {
	var out ASTNodeOutput
	err := msgpack.NewDecoder(r).Decode(&out)
	return out, err
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
