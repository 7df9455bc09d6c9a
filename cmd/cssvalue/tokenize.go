package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/diagfmt"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <value | -f file>",
		Short: "Tokenize a CSS property value",
		Long:  `Tokenize breaks a CSS property value into tokens and prints them with their spans`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	addFileFlag(cmd)
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	in, err := readValueInput(cmd, args)
	if err != nil {
		return err
	}

	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	result, err := in.tokenize(e.ctx, e.driverOptions())
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, токены всё равно печатаем
	e.reportDiagnostics(result.Bag, result.FileSet)

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(e.out, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(e.out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	e.printTimings()
	return nil
}
