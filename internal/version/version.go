// Package version holds build metadata. The variables are overridden at
// build time via -ldflags "-X cssvalue/internal/version.Version=...".
package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Tool is the CLI name.
const Tool = "cssvalue"

var (
	// Version is the semantic version of the module.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is a snapshot of the build metadata, ready for JSON encoding.
type Info struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the trimmed build metadata.
func Current() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Tool:      Tool,
		Version:   v,
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
}

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders "major.minor.patch[-suffix]" with one colour per component.
// Versions that are not dotted triples are returned unchanged.
func (i Info) Colored(enabled bool) string {
	core, suffix, _ := strings.Cut(i.Version, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return i.Version
	}
	paint := func(c *color.Color, s string) string {
		if !enabled {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(majorColor, parts[0]) + "." + paint(minorColor, parts[1]) + "." + paint(patchColor, parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// WritePretty prints the human form of i.
func (i Info) WritePretty(w io.Writer, colored bool) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", i.Tool, i.Colored(colored)); err != nil {
		return err
	}
	if i.GitCommit != "" {
		if _, err := fmt.Fprintf(w, "commit: %s\n", i.GitCommit); err != nil {
			return err
		}
	}
	if i.BuildDate != "" {
		if _, err := fmt.Fprintf(w, "built:  %s\n", i.BuildDate); err != nil {
			return err
		}
	}
	return nil
}
