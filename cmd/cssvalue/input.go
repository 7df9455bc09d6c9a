package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cssvalue/internal/diag"
	"cssvalue/internal/diagfmt"
	"cssvalue/internal/driver"
	"cssvalue/internal/source"
)

// valueInput is either a literal value argument or a file given with -f.
type valueInput struct {
	value string
	path  string // "" если значение из аргумента
}

func addFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "read the value from a file (- for stdin)")
}

func readValueInput(cmd *cobra.Command, args []string) (valueInput, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return valueInput{}, fmt.Errorf("failed to get file flag: %w", err)
	}
	switch {
	case path != "" && len(args) > 0:
		return valueInput{}, errors.New("pass either a value argument or --file, not both")
	case path == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return valueInput{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return valueInput{value: string(data)}, nil
	case path != "":
		return valueInput{path: path}, nil
	case len(args) == 1:
		return valueInput{value: args[0]}, nil
	default:
		return valueInput{}, errors.New("missing value: pass it as an argument or with --file")
	}
}

func (in valueInput) tokenize(ctx context.Context, opts driver.Options) (*driver.TokenizeResult, error) {
	if in.path == "" {
		return driver.TokenizeString(ctx, in.value, opts), nil
	}
	return driver.Tokenize(ctx, in.path, opts)
}

func (in valueInput) parse(ctx context.Context, opts driver.Options) (*driver.ParseResult, error) {
	if in.path == "" {
		return driver.ParseString(ctx, in.value, opts), nil
	}
	return driver.Parse(ctx, in.path, opts)
}

// reportDiagnostics prints bag to stderr in the caret format.
func (e *env) reportDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(e.errOut, bag, fs, diagfmt.PrettyOpts{
		Color:     e.colorFor(e.errOut),
		Context:   1,
		ShowNotes: true,
		ShowFixes: !e.quiet,
	})
}

func (e *env) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: e.maxDiagnostics,
		Timer:          e.timer,
	}
}
