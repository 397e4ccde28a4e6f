// Package site composes and installs the deployment module search path.
//
// Libraries are resolved in the following order of priority:
//
//	$ROOT/$ENV/lib/$PLATFORM/python[$PYVERSION]
//	$ROOT/$ENV/lib/$PLATFORM/python
//	$ROOT/$ENV/lib/python[$PYVERSION]
//	$ROOT/$ENV/lib/python
//
// repeated for each active environment, custom before dev before prod.
package site

import (
	"os"
	"strings"
)

// Candidate is one composed directory string, not yet checked for existence.
type Candidate struct {
	Path string // composed path, always forward-slash joined
	Env  string // environment that produced it

	// Which template produced the candidate.
	PlatformSpecific bool
	Versioned        bool
}

// PathEntry is a candidate annotated with what the filesystem and the
// installer made of it.
type PathEntry struct {
	Candidate
	Exists      bool
	IsDuplicate bool // same path already produced by a higher-priority environment
	DuplicateOf int  // index of the first occurrence when IsDuplicate
	Installed   bool // survived into the final search path
}

// Analysis is the full result of one compose+install pass.
type Analysis struct {
	Candidates []Candidate
	Entries    []PathEntry
	SearchPath []string // final list, highest priority first
	EnvDir     string   // companion env-stack dir for the top active environment
}

// SearchPath models the process module resolution list explicitly, so the
// composer and installer stay pure and nothing leans on ambient global state.
type SearchPath struct {
	dirs []string
}

// NewSearchPath returns a search path seeded with the given directories.
func NewSearchPath(dirs ...string) *SearchPath {
	return &SearchPath{dirs: append([]string(nil), dirs...)}
}

// FromEnviron seeds a search path from $PYTHONPATH, mirroring what an
// interpreter launched in this environment would start with. Empty segments
// are dropped.
func FromEnviron() *SearchPath {
	var dirs []string
	for _, p := range strings.Split(os.Getenv("PYTHONPATH"), string(os.PathListSeparator)) {
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return NewSearchPath(dirs...)
}

// Dirs returns a copy of the current list, highest priority first.
func (p *SearchPath) Dirs() []string {
	return append([]string(nil), p.dirs...)
}

// Len returns the number of entries.
func (p *SearchPath) Len() int {
	return len(p.dirs)
}
