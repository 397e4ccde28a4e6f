package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sitepath/internal/config"
	"sitepath/internal/site"
	"sitepath/internal/tui"
	"sitepath/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "rsgalloway",
		Repository: "sitepath",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/rsgalloway/sitepath/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sitepath [options]\n\n")
		fmt.Fprintf(os.Stderr, "sitepath composes the deployment module search path from $ROOT, $ENV,\n")
		fmt.Fprintf(os.Stderr, "$DEV and friends, and shows which library directories will be used.\n")
		fmt.Fprintf(os.Stderr, "Candidates that do not exist on disk are silently skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sitepath             # Start TUI mode (browse the search path)\n")
		fmt.Fprintf(os.Stderr, "  sitepath --list      # Print the installed search path\n")
		fmt.Fprintf(os.Stderr, "  eval $(sitepath -e)  # Export PYTHONPATH for the current shell\n")
		fmt.Fprintf(os.Stderr, "  ROOT=/var/tmp sitepath -l -a   # Include missing candidates\n")
	}

	listFlag := pflag.BoolP("list", "l", false, "Print the installed search path, one entry per line")
	allFlag := pflag.BoolP("all", "a", false, "With --list, include missing and duplicate candidates")
	exportFlag := pflag.BoolP("export", "e", false, "Print shell-exportable PYTHONPATH and DEFAULT_ENV_DIR assignments")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the full analysis as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a detailed diagnostic report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable debug logging and verbose report detail")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("sitepath version %s\n", site.Version)
		return
	}

	if *updateFlag {
		checkUpdate(site.Version)
		return
	}

	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	if *webFlag {
		web.StartServer()
		return
	}

	if *reportFlag {
		runReportMode(*outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJSONMode()
		return
	}

	if *exportFlag {
		runExportMode()
		return
	}

	if *listFlag {
		runListMode(*allFlag)
		return
	}

	// Default: TUI
	runTuiMode()
}

// analyze runs the single compose+install pass every CLI mode shares,
// seeding the search path from $PYTHONPATH like an interpreter would.
func analyze() (config.Config, *site.SearchPath, site.Analysis) {
	cfg := config.Load()
	sp := site.FromEnviron()
	a := site.Setup(cfg, sp)

	log.Debug("configuration loaded",
		"root", cfg.Root,
		"platform", cfg.Platform,
		"python_dir", cfg.PythonDir,
		"environments", strings.Join(cfg.Environments(), ","))
	for _, e := range a.Entries {
		if !e.Exists {
			log.Debug("candidate missing, skipped", "path", e.Path, "env", e.Env)
		}
	}

	return cfg, sp, a
}

func runListMode(all bool) {
	_, sp, a := analyze()

	if !all {
		for _, p := range sp.Dirs() {
			fmt.Println(p)
		}
		return
	}

	for i, e := range a.Entries {
		note := ""
		if e.IsDuplicate {
			note = fmt.Sprintf(" (duplicate of %d)", e.DuplicateOf+1)
		} else if !e.Exists {
			note = " (missing)"
		}
		fmt.Printf("%2d. %s %s%s\n", i+1, e.Marker(), e.Path, note)
	}
}

func runExportMode() {
	_, sp, a := analyze()

	fmt.Printf("PYTHONPATH=%s\n", strings.Join(sp.Dirs(), string(os.PathListSeparator)))

	// Set-if-absent: a value already exported by the operator wins.
	if _, ok := os.LookupEnv(config.EnvDirVar); !ok && a.EnvDir != "" {
		fmt.Printf("%s=%s\n", config.EnvDirVar, a.EnvDir)
	}
}

func runReportMode(outputFile string, verbose bool) {
	cfg, _, a := analyze()

	report := site.GenerateReport(cfg, a, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJSONMode() {
	cfg, _, a := analyze()

	response := struct {
		Config config.Config
		site.Analysis
		Version string
	}{
		Config:   cfg,
		Analysis: a,
		Version:  site.Version,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(response)
}

func runTuiMode() {
	m := tui.InitialModel()
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
