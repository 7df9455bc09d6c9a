package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cssvalue/internal/diag"
	"cssvalue/internal/source"
)

type palette struct {
	err, warn, info func(a ...any) string
	bold, dim       func(a ...any) string
	caret, fix      func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan, color.Bold),
		bold:  mk(color.Bold),
		dim:   mk(color.Faint),
		caret: mk(color.FgRed),
		fix:   mk(color.FgGreen),
	}
}

func (p palette) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.err(sev.String())
	case diag.SevWarning:
		return p.warn(sev.String())
	default:
		return p.info(sev.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "%s\n", p.dim(fmt.Sprintf("... %d more diagnostic(s) not shown", n)))
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.bold(position(fs, d.Primary, opts.PathMode)),
		p.severity(d.Severity),
		d.Code.ID(),
		p.bold(d.Message))

	if f := fs.Get(d.Primary.File); f != nil {
		writeSnippet(w, f, d.Primary, opts, p)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.info("note:"), position(fs, n.Span, opts.PathMode), n.Msg)
		}
	}

	if !opts.ShowFixes {
		return
	}
	for i, fix := range d.Fixes {
		fmt.Fprintf(w, "  %s %s\n", p.fix(fmt.Sprintf("fix #%d:", i+1)), fix.Title)
		for _, edit := range fix.Edits {
			start, end := fs.Resolve(edit.Span)
			fmt.Fprintf(w, "    at %d:%d-%d:%d apply=%q\n", start.Line, start.Col, end.Line, end.Col, edit.NewText)
			if !opts.ShowPreview {
				continue
			}
			preview, err := buildFixEditPreview(fs, edit)
			if err != nil {
				fmt.Fprintf(w, "    preview unavailable: %v\n", err)
				continue
			}
			fmt.Fprintln(w, "    preview:")
			for _, line := range preview.before {
				fmt.Fprintf(w, "      %s\n", p.caret("- "+line))
			}
			for _, line := range preview.after {
				fmt.Fprintf(w, "      %s\n", p.fix("+ "+line))
			}
		}
	}
}

// writeSnippet prints the primary line with a gutter, optional context lines
// around it and the caret marker under the span.
func writeSnippet(w io.Writer, f *source.File, span source.Span, opts PrettyOpts, p palette) {
	snip := f.Snippet(span)
	ctx := uint32(max(opts.Context, 0)) //nolint:gosec // non-negative int8
	first := uint32(1)
	if snip.Pos.Line > ctx {
		first = snip.Pos.Line - ctx
	}
	last := snip.Pos.Line + ctx
	if total := uint32(len(f.LineIdx)) + 1; last > total { //nolint:gosec // line index fits uint32
		last = total
	}

	gutter := len(fmt.Sprint(last))
	for ln := first; ln <= last; ln++ {
		line := f.GetLine(ln)
		if ln == snip.Pos.Line {
			line = snip.Line
		}
		fmt.Fprintf(w, " %s %s\n", p.dim(fmt.Sprintf("%*d |", gutter, ln)), clip(line, opts.Width))
		if ln == snip.Pos.Line {
			fmt.Fprintf(w, " %s %s\n", p.dim(strings.Repeat(" ", gutter)+" |"), p.caret(clip(snip.Marker(), opts.Width)))
		}
	}
}

func clip(s string, width uint8) string {
	if width == 0 {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}

// position renders "path:line:col" for the start of span.
func position(fs *source.FileSet, span source.Span, mode PathMode) string {
	f := fs.Get(span.File)
	if f == nil {
		return fmt.Sprintf("<unknown>:%d", span.Start)
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", "")
	default:
		return f.Path
	}
}
