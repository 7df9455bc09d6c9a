package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cssvalue/internal/diagfmt"
)

var parseFormats = map[string]struct{}{
	"pretty":  {},
	"tree":    {},
	"json":    {},
	"msgpack": {},
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <value | -f file>",
		Short: "Parse a CSS property value and print its tree",
		Long: `Parse builds the value tree of a CSS property value.
On a syntax error the diagnostic is printed to stderr and the exit status is 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "", "output format (pretty|tree|json|msgpack); default from cssvalue.toml or pretty")
	cmd.Flags().Bool("verify-spans", false, "check span invariants of the parsed tree")
	addFileFlag(cmd)
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	in, err := readValueInput(cmd, args)
	if err != nil {
		return err
	}
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = strings.TrimSpace(e.config.Output.Format)
	}
	if format == "" {
		format = "pretty"
	}
	if _, ok := parseFormats[format]; !ok {
		return fmt.Errorf("unknown format: %s", format)
	}
	verify, err := cmd.Flags().GetBool("verify-spans")
	if err != nil {
		return fmt.Errorf("failed to get verify-spans flag: %w", err)
	}

	opts := e.driverOptions()
	opts.VerifySpans = verify
	result, err := in.parse(e.ctx, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if !result.OK() {
		e.reportDiagnostics(result.Bag, result.FileSet)
		e.printTimings()
		return errReported
	}

	switch format {
	case "tree":
		err = diagfmt.FormatASTTree(e.out, result.Value)
	case "json":
		err = diagfmt.FormatASTJSON(e.out, result.Value)
	case "msgpack":
		err = diagfmt.FormatASTMsgpack(e.out, result.Value)
	default:
		err = diagfmt.FormatASTPretty(e.out, result.Value, result.FileSet)
	}
	if err != nil {
		return err
	}
	e.printTimings()
	return nil
}
