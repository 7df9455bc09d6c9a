package parser

import (
	"bytes"
	"fmt"
	"strings"

	"cssvalue/internal/diag"
	"cssvalue/internal/source"
)

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	// IllegalToken: input no token alternative matches, or an unterminated string.
	IllegalToken ErrorKind = iota
	// MalformedHashColor: '#' followed by a hex run that is not 3, 4, 6 or 8 digits long.
	MalformedHashColor
	// OperatorSpacing: an operator without the mandatory whitespace on both sides.
	OperatorSpacing
	// UnexpectedToken: a token of the wrong class for the grammar position.
	UnexpectedToken
	// EmptyFunctionArgument: nothing between a function's parenthesis or commas.
	EmptyFunctionArgument
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalToken:
		return "IllegalToken"
	case MalformedHashColor:
		return "MalformedHashColor"
	case OperatorSpacing:
		return "OperatorSpacing"
	case UnexpectedToken:
		return "UnexpectedToken"
	case EmptyFunctionArgument:
		return "EmptyFunctionArgument"
	}
	return "ErrorKind(?)"
}

// Code returns the diagnostic code used for the kind.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case IllegalToken:
		return diag.LexIllegalToken
	case MalformedHashColor:
		return diag.SynMalformedHashColor
	case OperatorSpacing:
		return diag.SynOperatorSpacing
	case EmptyFunctionArgument:
		return diag.SynEmptyFunctionArgument
	default:
		return diag.SynUnexpectedToken
	}
}

// Error is the single terminal failure of a parse. It carries enough of the
// source to render itself without a FileSet.
type Error struct {
	Kind    ErrorKind
	Code    diag.Code
	Text    string      // offending source text; empty at end of input
	Span    source.Span // byte range of Text in the parsed file
	Pos     source.LineCol
	Message string
	Line    string // source line containing Span.Start
	Marker  string // caret line aligned under Line
	Fix     *diag.Fix

	// Lines of a multi-line input around Line; empty for sheet entries.
	Before string
	After  string
}

// Error renders the message, the input and a caret under the offending
// offset. For multi-line input the caret line follows the line with the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (at %d:%d)\n%s%s\n%s%s", e.Message, e.Pos.Line, e.Pos.Col, e.Before, e.Line, e.Marker, e.After)
}

// echoInput fills Before and After from the whole parsed content.
func (e *Error) echoInput(content []byte) {
	start := min(int(e.Span.Start), len(content))
	lineStart := bytes.LastIndexByte(content[:start], '\n') + 1
	lineEnd := len(content)
	if i := bytes.IndexByte(content[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	e.Before = string(content[:lineStart])
	e.After = strings.TrimRight(string(content[lineEnd:]), "\n")
}

// Offset returns the byte offset of the error inside its line.
func (e *Error) Offset() uint32 {
	return e.Pos.Col - 1
}

// Diagnostic converts the error for collection in a diag.Bag.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Code, e.Span, e.Message)
	if e.Fix != nil {
		d = d.WithFix(e.Fix.Title, e.Fix.Edits...)
	}
	return d
}

func newError(file *source.File, kind ErrorKind, code diag.Code, sp source.Span, msg string) *Error {
	sn := file.Snippet(sp)
	return &Error{
		Kind:    kind,
		Code:    code,
		Text:    file.Slice(sp.Start, sp.End),
		Span:    sp,
		Pos:     sn.Pos,
		Message: msg,
		Line:    sn.Line,
		Marker:  sn.Marker(),
	}
}

// spacingFix suggests inserting the missing spaces around an operator.
func spacingFix(file *source.File, op source.Span) *diag.Fix {
	var edits []diag.FixEdit
	if op.Start > 0 && !isSpaceByte(file.Content[op.Start-1]) {
		edits = append(edits, diag.FixEdit{Span: source.At(op.File, op.Start), NewText: " "})
	}
	if int(op.End) < len(file.Content) && !isSpaceByte(file.Content[op.End]) {
		edits = append(edits, diag.FixEdit{Span: source.At(op.File, op.End), NewText: " "})
	}
	if len(edits) == 0 {
		return nil
	}
	return &diag.Fix{
		Title: fmt.Sprintf("surround %q with spaces", file.Slice(op.Start, op.End)),
		Edits: edits,
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
