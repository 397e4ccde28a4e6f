package site

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by Locate when no search path entry provides the
// requested module. It is a normal negative result, not a failure.
var ErrNotFound = errors.New("module not found")

// moduleExts are the file extensions that make a name importable.
var moduleExts = []string{".py", ".pyc", ".pyd"}

// expandTilde expands ~ to the user's home directory.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// Locate reports where name would be resolved against the search path: the
// first entry providing either a package directory (one containing an
// __init__ module) or a plain module file wins. Dotted names descend into
// subpackages. The lookup is purely filesystem presence, nothing is imported
// or executed.
func Locate(name string, searchPath []string) (string, error) {
	rel := strings.ReplaceAll(name, ".", Sep)
	for _, dir := range searchPath {
		dir = expandTilde(dir)

		pkg := filepath.Join(dir, filepath.FromSlash(rel))
		for _, ext := range moduleExts {
			if fileExists(filepath.Join(pkg, "__init__"+ext)) {
				return absPath(pkg), nil
			}
		}
		for _, ext := range moduleExts {
			if f := pkg + ext; fileExists(f) {
				return absPath(f), nil
			}
		}
	}
	return "", ErrNotFound
}

// Modules lists the importable names a single directory provides: package
// subdirectories and module files, sorted, without duplicates.
func Modules(dir string) []string {
	files, err := os.ReadDir(expandTilde(dir))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	for _, f := range files {
		name := f.Name()
		if f.IsDir() {
			for _, ext := range moduleExts {
				if fileExists(filepath.Join(expandTilde(dir), name, "__init__"+ext)) {
					seen[name] = struct{}{}
					break
				}
			}
			continue
		}
		for _, ext := range moduleExts {
			if strings.HasSuffix(name, ext) {
				base := strings.TrimSuffix(name, ext)
				if base != "" && base != "__init__" {
					seen[base] = struct{}{}
				}
				break
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
