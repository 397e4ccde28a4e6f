package site

import (
	"os"
	"path/filepath"
	"testing"

	"sitepath/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func asCandidates(paths []string) []Candidate {
	out := make([]Candidate, len(paths))
	for i, p := range paths {
		out[i] = Candidate{Path: p}
	}
	return out
}

func TestInstallFiltersToExisting(t *testing.T) {
	tmp := t.TempDir()

	// Nine candidates, only the 3rd and 7th exist on disk.
	candidates := make([]string, 9)
	for i := range candidates {
		candidates[i] = filepath.Join(tmp, "c", string(rune('a'+i)))
	}
	mkdir(t, candidates[2])
	mkdir(t, candidates[6])

	got := Install(asCandidates(candidates), nil)
	assert.Equal(t, []string{candidates[2], candidates[6]}, got)
}

func TestInstallPrepends(t *testing.T) {
	tmp := t.TempDir()
	a := mkdir(t, tmp, "a")
	b := mkdir(t, tmp, "b")

	got := Install(asCandidates([]string{a, b}), []string{"/usr/lib/python3"})
	assert.Equal(t, []string{a, b, "/usr/lib/python3"}, got)
}

func TestInstallSkipsAlreadyPresent(t *testing.T) {
	tmp := t.TempDir()
	a := mkdir(t, tmp, "a")
	b := mkdir(t, tmp, "b")

	got := Install(asCandidates([]string{a, b}), []string{b})
	assert.Equal(t, []string{a, b}, got)
}

func TestInstallCollapsesDuplicateCandidates(t *testing.T) {
	tmp := t.TempDir()
	a := mkdir(t, tmp, "a")

	got := Install(asCandidates([]string{a, a, a}), nil)
	assert.Equal(t, []string{a}, got)
}

func TestInstallIdempotent(t *testing.T) {
	tmp := t.TempDir()
	a := mkdir(t, tmp, "a")
	b := mkdir(t, tmp, "b")
	candidates := asCandidates([]string{a, b})

	once := Install(candidates, []string{"/usr/lib/python3"})
	twice := Install(candidates, once)
	assert.Equal(t, once, twice)
}

func TestInstallFileIsNotADirectory(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "notadir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	got := Install(asCandidates([]string{file}), nil)
	assert.Empty(t, got)
}

func TestSearchPathInstall(t *testing.T) {
	tmp := t.TempDir()
	a := mkdir(t, tmp, "a")

	sp := NewSearchPath("/usr/lib/python3")
	sp.Install(asCandidates([]string{a}))
	assert.Equal(t, []string{a, "/usr/lib/python3"}, sp.Dirs())
	assert.Equal(t, 2, sp.Len())

	// Dirs returns a copy; mutating it must not touch the list.
	dirs := sp.Dirs()
	dirs[0] = "/elsewhere"
	assert.Equal(t, []string{a, "/usr/lib/python3"}, sp.Dirs())
}

func testTreeConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	mkdir(t, root, "prod", "lib", "linux", "python3")
	mkdir(t, root, "prod", "lib", "python")
	mkdir(t, root, "dev", "lib", "python3")
	return config.Config{
		Root:      root,
		ProdEnv:   "prod",
		Dev:       true,
		DevEnv:    "dev",
		Platform:  "linux",
		PyVersion: "3",
		PythonDir: "python3",
	}
}

func TestSetup(t *testing.T) {
	cfg := testTreeConfig(t)

	sp := NewSearchPath()
	a := Setup(cfg, sp)

	want := []string{
		filepath.Join(cfg.Root, "dev", "lib", "python3"),
		filepath.Join(cfg.Root, "prod", "lib", "linux", "python3"),
		filepath.Join(cfg.Root, "prod", "lib", "python"),
	}
	assert.Equal(t, want, sp.Dirs())
	assert.Equal(t, want, a.SearchPath)
	assert.Equal(t, filepath.ToSlash(filepath.Join(cfg.Root, "dev", "env")), a.EnvDir)

	// Running setup again must not grow or reorder the list.
	again := Setup(cfg, sp)
	assert.Equal(t, want, sp.Dirs())
	assert.Equal(t, want, again.SearchPath)
}

func TestAnalyzeAnnotations(t *testing.T) {
	cfg := testTreeConfig(t)
	a := Analyze(cfg, nil)

	require.Len(t, a.Entries, 8)
	var installed, missing int
	for _, e := range a.Entries {
		if e.Installed {
			installed++
			assert.True(t, e.Exists)
		}
		if !e.Exists {
			missing++
			assert.Equal(t, MarkMissing, e.Marker())
		}
	}
	assert.Equal(t, 3, installed)
	assert.Equal(t, 5, missing)
}

func TestAnalyzeMarksDuplicates(t *testing.T) {
	cfg := testTreeConfig(t)
	cfg.CustomEnv = "dev" // same paths as the dev block, emitted twice

	a := Analyze(cfg, nil)
	require.Len(t, a.Entries, 12)
	assert.False(t, a.Entries[0].IsDuplicate)
	assert.True(t, a.Entries[4].IsDuplicate)
	assert.Equal(t, 0, a.Entries[4].DuplicateOf)
	assert.Equal(t, MarkDuplicate, a.Entries[4].Marker())
}
