package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/driver"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <file|dir>...",
		Short: "Format value sheets",
		Long: `Fmt rewrites every value of the given sheets in canonical form:
single spaces between values, ", " between comma groups, spaced operators.
Comments, blank lines and trailing ';' are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFmt,
	}
	cmd.Flags().Bool("check", false, "list files that need formatting, do not write")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("stdout", false, "print formatted sheets to stdout instead of rewriting files")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = auto)")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("failed to get stdout flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if toStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	if toStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if !cmd.Flags().Changed("jobs") {
		jobs = e.config.Check.Jobs
	}
	results, err := driver.FormatPaths(e.ctx, args, driver.FormatOptions{
		Check:      check,
		Stdout:     toStdout,
		Jobs:       jobs,
		Extensions: e.config.Check.Extensions,
	})
	if err != nil {
		return err
	}

	var failed, changed bool
	for _, res := range results {
		failed = failed || res.Err != nil
		changed = changed || res.Changed
	}

	if outputFormat == "json" {
		if err := e.renderFmtJSON(results, check); err != nil {
			return err
		}
	} else {
		e.renderFmtText(results, check, toStdout)
	}

	if failed {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && changed {
		// список файлов уже напечатан
		return errReported
	}
	return nil
}

func (e *env) renderFmtText(results []driver.FormatResult, check, toStdout bool) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(e.errOut, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		switch {
		case toStdout:
			_, _ = e.out.Write(res.Formatted)
		case !res.Changed || e.quiet:
		case check:
			fmt.Fprintln(e.out, res.Path)
		default:
			fmt.Fprintf(e.out, "reformatted %s\n", res.Path)
		}
	}
}

func (e *env) renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
		Error   string `json:"error,omitempty"`
		Check   bool   `json:"check"`
	}
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Check: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
