package site

import (
	"os"

	"sitepath/internal/config"
)

// dirExists reports whether path is an existing directory. Absence is an
// expected branch, not an error, so nothing is surfaced.
func dirExists(path string) bool {
	info, err := os.Stat(expandTilde(path))
	return err == nil && info.IsDir()
}

// Install returns the new search path list: candidates that exist on disk and
// are not already present are prepended to current, preserving their relative
// order, so the first surviving candidate becomes the highest-priority entry.
// Running it twice with the same candidates is a no-op.
func Install(candidates []Candidate, current []string) []string {
	seen := make(map[string]struct{}, len(current)+len(candidates))
	for _, p := range current {
		seen[p] = struct{}{}
	}

	var add []string
	for _, c := range candidates {
		if _, ok := seen[c.Path]; ok {
			continue
		}
		if !dirExists(c.Path) {
			continue
		}
		seen[c.Path] = struct{}{}
		add = append(add, c.Path)
	}

	out := make([]string, 0, len(add)+len(current))
	out = append(out, add...)
	return append(out, current...)
}

// Install mutates the search path in place with the filtered candidates.
func (p *SearchPath) Install(candidates []Candidate) {
	p.dirs = Install(candidates, p.dirs)
}

// Analyze runs a full compose+install pass against the current list and
// annotates every candidate with its outcome. The input list is not modified.
func Analyze(cfg config.Config, current []string) Analysis {
	candidates := Compose(cfg)
	installed := Install(candidates, current)

	inPath := make(map[string]bool, len(installed))
	for _, p := range installed {
		inPath[p] = true
	}

	entries := make([]PathEntry, len(candidates))
	first := make(map[string]int, len(candidates))
	for i, c := range candidates {
		e := PathEntry{
			Candidate: c,
			Exists:    dirExists(c.Path),
			Installed: inPath[c.Path],
		}
		if j, ok := first[c.Path]; ok {
			e.IsDuplicate = true
			e.DuplicateOf = j
		} else {
			first[c.Path] = i
		}
		entries[i] = e
	}

	return Analysis{
		Candidates: candidates,
		Entries:    entries,
		SearchPath: installed,
		EnvDir:     EnvDir(cfg),
	}
}

// Setup is the single initialization routine: it composes the candidate list
// for cfg and installs the surviving directories into sp. The returned
// analysis describes what happened to each candidate.
func Setup(cfg config.Config, sp *SearchPath) Analysis {
	a := Analyze(cfg, sp.Dirs())
	sp.dirs = append([]string(nil), a.SearchPath...)
	return a
}
