package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"cssvalue/internal/diag"
	"cssvalue/internal/diagfmt"
	"cssvalue/internal/driver"
	"cssvalue/internal/fix"
	"cssvalue/internal/observ"
	"cssvalue/internal/pipeline"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file|dir>...",
		Short: "Check value sheets",
		Long: `Check parses every entry of the given value sheets. Directories are
searched recursively for files with the configured extensions (.cssv by default).
Each line of a sheet is either "value" or "property: value", optionally ending
with ';'. Blank lines and lines starting with // are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = auto)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("verify-spans", false, "check span invariants of every parsed tree")
	cmd.Flags().StringSlice("ext", nil, "file extensions to search for in directories")
	cmd.Flags().Bool("fix", false, "apply suggested fixes to the checked files")
	return cmd
}

type checkSummary struct {
	diagfmt.DiagnosticsOutput
	Files   int            `json:"files"`
	Entries int            `json:"entries"`
	Failed  int            `json:"failed"`
	Timings *observ.Report `json:"timings,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiMode, err := readToggle("ui", uiFlag)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	verify, err := cmd.Flags().GetBool("verify-spans")
	if err != nil {
		return fmt.Errorf("failed to get verify-spans flag: %w", err)
	}
	exts, err := cmd.Flags().GetStringSlice("ext")
	if err != nil {
		return fmt.Errorf("failed to get ext flag: %w", err)
	}
	applyFixes, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return fmt.Errorf("failed to get fix flag: %w", err)
	}

	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if !cmd.Flags().Changed("jobs") {
		jobs = e.config.Check.Jobs
	}
	if len(exts) == 0 {
		exts = e.config.Check.Extensions
	}

	opts := e.driverOptions()
	opts.Jobs = jobs
	opts.Extensions = exts
	opts.VerifySpans = verify

	files, err := collectInputs(args, opts)
	if err != nil {
		return err
	}
	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	var res *driver.CheckResult
	if !e.quiet && format == "pretty" && uiMode.enabledFor(e.out) && len(files) > 0 {
		display := make([]string, len(files))
		for i, f := range files {
			display[i] = pipeline.DisplayName(f, baseDir)
		}
		res, err = runCheckWithUI(e, "checking", display, files, baseDir, opts)
	} else {
		res, err = driver.ParseFiles(e.ctx, files, baseDir, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	bag := res.Diagnostics(0)
	switch format {
	case "json":
		summary := checkSummary{
			DiagnosticsOutput: diagfmt.BuildDiagnosticsOutput(bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         diagfmt.PathModeRelative,
				IncludeNotes:     true,
				IncludeFixes:     true,
			}),
			Files:   len(res.Files),
			Entries: res.Entries(),
			Failed:  res.Failed(),
		}
		if e.timer != nil {
			report := e.timer.Report()
			summary.Timings = &report
		}
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return err
		}
	default:
		e.reportDiagnostics(bag, res.FileSet)
		if !e.quiet {
			fmt.Fprintf(e.out, "checked %d file(s), %d entr%s: %d failed\n",
				len(res.Files), res.Entries(), plural(res.Entries(), "y", "ies"), res.Failed())
		}
		if e.timings {
			printStageTimings(e.errOut, res.Timings)
		}
		e.printTimings()
	}

	if applyFixes {
		if err := e.applyFixes(res, bag); err != nil {
			return err
		}
	}

	if res.Failed() > 0 {
		return errReported
	}
	return nil
}

// applyFixes writes the suggested edits back. The exit status still
// reflects the files as they were checked.
func (e *env) applyFixes(res *driver.CheckResult, bag *diag.Bag) error {
	applied, err := fix.Apply(res.FileSet, bag.Items(), fix.ApplyOptions{Write: true})
	if errors.Is(err, fix.ErrNoFixes) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}
	if e.quiet {
		return nil
	}
	for _, ch := range applied.FileChanges {
		fmt.Fprintf(e.errOut, "fixed %s (%d edit%s)\n", ch.Path, ch.EditCount, plural(ch.EditCount, "", "s"))
	}
	for _, sk := range applied.Skipped {
		fmt.Fprintf(e.errOut, "skipped fix %q: %s\n", sk.Title, sk.Reason)
	}
	return nil
}

// collectInputs expands directories into their value sheets. Explicit files
// are kept whatever their extension.
func collectInputs(args []string, opts driver.Options) ([]string, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = driver.DefaultExtensions
	}
	var files []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			// отсутствующий файл станет диагностикой IO4001
			files = append(files, arg)
			continue
		}
		if !st.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := driver.ListFiles(arg, exts)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", arg, err)
		}
		files = append(files, found...)
	}
	for i, f := range files {
		files[i] = filepath.Clean(f)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
