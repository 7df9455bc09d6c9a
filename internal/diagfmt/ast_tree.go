package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"cssvalue/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// FormatASTTree draws the value as a top-down ASCII tree.
func FormatASTTree(w io.Writer, v ast.CSSValue) error {
	block := renderTree(buildValueTreeNode(v))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func buildValueTreeNode(v ast.CSSValue) *treeNode {
	root := &treeNode{label: "CSSValue"}
	for i, list := range v {
		ln := &treeNode{label: fmt.Sprintf("List[%d]", i)}
		for _, n := range list {
			ln.children = append(ln.children, buildNodeTree(n))
		}
		root.children = append(root.children, ln)
	}
	return root
}

func buildNodeTree(n ast.Node) *treeNode {
	node := &treeNode{label: nodeLabel(n)}
	switch n := n.(type) {
	case *ast.Function:
		for _, a := range n.Args {
			node.children = append(node.children, buildNodeTree(a))
		}
	case *ast.Operation:
		node.children = append(node.children, buildNodeTree(n.Left), buildNodeTree(n.Right))
	}
	return node
}

// renderTree converts a treeNode into lines of ASCII art. The label is centred
// over its children; widths are display columns so wide runes in quoted labels
// stay aligned.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	const spacing = 3

	blocks := make([]treeBlock, len(node.children))
	positions := make([]int, len(blocks))
	childWidth, height := 0, 0
	for i, child := range node.children {
		if i > 0 {
			childWidth += spacing
		}
		blocks[i] = renderTree(child)
		positions[i] = childWidth + blocks[i].root
		childWidth += blocks[i].width
		height = max(height, len(blocks[i].lines))
	}

	center := (positions[0] + positions[len(positions)-1]) / 2
	labelStart := center - labelWidth/2
	shift := 0
	if labelStart < 0 {
		// метка шире детей: сдвигаем детей вправо
		shift = -labelStart
		labelStart = 0
	}
	root := labelStart + labelWidth/2
	width := max(labelStart+labelWidth, shift+childWidth, root+1)

	lines := make([]string, 0, height+2)
	lines = append(lines, runewidth.FillRight(strings.Repeat(" ", labelStart)+label, width))

	connector := []byte(strings.Repeat(" ", width))
	connector[root] = '|'
	for _, pos := range positions {
		pos += shift
		switch {
		case pos < root:
			connector[pos] = '/'
		case pos > root:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}
	lines = append(lines, string(connector))

	for row := 0; row < height; row++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", shift))
		for i, block := range blocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(runewidth.FillRight(line, block.width))
			if i != len(blocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, runewidth.FillRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: root}
}
