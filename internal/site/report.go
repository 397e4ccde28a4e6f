package site

import (
	"fmt"
	"strings"

	"sitepath/internal/config"
)

// Markers used in report and list output.
const (
	MarkMissing   = "✗"
	MarkDuplicate = "≈"
	MarkInstalled = " "
)

// Marker returns the single-character status marker for an entry.
func (e PathEntry) Marker() string {
	switch {
	case e.IsDuplicate:
		return MarkDuplicate
	case !e.Exists:
		return MarkMissing
	default:
		return MarkInstalled
	}
}

// GenerateReport renders a plain-text diagnostic report of one compose and
// install pass. Plain text on purpose: reports get saved to files.
func GenerateReport(cfg config.Config, a Analysis, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "sitepath report (v%s)\n", Version)
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString("Configuration:\n")
	fmt.Fprintf(&b, "  root:        %s\n", cfg.Root)
	fmt.Fprintf(&b, "  platform:    %s\n", cfg.Platform)
	fmt.Fprintf(&b, "  python dir:  %s\n", cfg.PythonDir)
	fmt.Fprintf(&b, "  environments: %s\n", strings.Join(cfg.Environments(), ", "))
	if verbose {
		fmt.Fprintf(&b, "  deploy root: %s\n", cfg.DeployRoot)
		fmt.Fprintf(&b, "  dev active:  %v\n", cfg.Dev)
		fmt.Fprintf(&b, "  custom env:  %q\n", cfg.CustomEnv)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Candidates (%d, most specific first):\n", len(a.Entries))
	for i, e := range a.Entries {
		fmt.Fprintf(&b, "  %2d. %s %s\n", i+1, e.Marker(), e.Path)
		if e.IsDuplicate {
			fmt.Fprintf(&b, "        duplicate of %d (%s environment wins)\n",
				e.DuplicateOf+1, a.Entries[e.DuplicateOf].Env)
		}
		if verbose {
			fmt.Fprintf(&b, "        env=%s platform-specific=%v versioned=%v exists=%v\n",
				e.Env, e.PlatformSpecific, e.Versioned, e.Exists)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Search path (%d installed):\n", len(a.SearchPath))
	if len(a.SearchPath) == 0 {
		b.WriteString("  (no candidate directories exist on disk)\n")
	}
	for _, p := range a.SearchPath {
		fmt.Fprintf(&b, "  %s\n", p)
		if verbose {
			if mods := Modules(p); len(mods) > 0 {
				fmt.Fprintf(&b, "    provides: %s\n", strings.Join(mods, ", "))
			}
		}
	}
	b.WriteString("\n")

	if a.EnvDir != "" {
		fmt.Fprintf(&b, "%s: %s\n", config.EnvDirVar, a.EnvDir)
	}

	return b.String()
}
