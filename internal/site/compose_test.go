package site

import (
	"strings"
	"testing"

	"sitepath/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prodConfig() config.Config {
	return config.Config{
		Root:      "/mnt/tools",
		ProdEnv:   "prod",
		Platform:  "linux",
		PyVersion: "3",
		PythonDir: "python3",
	}
}

func paths(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Path
	}
	return out
}

func TestComposeProdOnly(t *testing.T) {
	got := Compose(prodConfig())
	assert.Equal(t, []string{
		"/mnt/tools/prod/lib/linux/python3",
		"/mnt/tools/prod/lib/linux/python",
		"/mnt/tools/prod/lib/python3",
		"/mnt/tools/prod/lib/python",
	}, paths(got))
}

func TestComposeDevPrecedesProd(t *testing.T) {
	cfg := prodConfig()
	cfg.Dev = true
	cfg.DevEnv = "dev"

	got := paths(Compose(cfg))
	require.Len(t, got, 8)
	assert.Equal(t, []string{
		"/mnt/tools/dev/lib/linux/python3",
		"/mnt/tools/dev/lib/linux/python",
		"/mnt/tools/dev/lib/python3",
		"/mnt/tools/dev/lib/python",
		"/mnt/tools/prod/lib/linux/python3",
		"/mnt/tools/prod/lib/linux/python",
		"/mnt/tools/prod/lib/python3",
		"/mnt/tools/prod/lib/python",
	}, got)
}

func TestComposeCustomPrecedesAll(t *testing.T) {
	cfg := prodConfig()
	cfg.Dev = true
	cfg.DevEnv = "dev"
	cfg.CustomEnv = "test"

	got := paths(Compose(cfg))
	require.Len(t, got, 12)
	assert.True(t, strings.HasPrefix(got[0], "/mnt/tools/test/lib/"))
	assert.True(t, strings.HasPrefix(got[4], "/mnt/tools/dev/lib/"))
	assert.True(t, strings.HasPrefix(got[8], "/mnt/tools/prod/lib/"))
}

// Higher-priority environments must contribute all their candidates before
// any lower-priority environment contributes one.
func TestComposeEnvironmentOrderIsContiguous(t *testing.T) {
	cfg := prodConfig()
	cfg.Dev = true
	cfg.DevEnv = "dev"
	cfg.CustomEnv = "test"

	rank := map[string]int{"test": 0, "dev": 1, "prod": 2}
	last := -1
	for _, c := range Compose(cfg) {
		r, ok := rank[c.Env]
		require.True(t, ok, "unexpected env %q", c.Env)
		assert.GreaterOrEqual(t, r, last)
		last = r
	}
}

func TestComposeVersionAgnostic(t *testing.T) {
	cfg := prodConfig()
	cfg.PyVersion = ""
	cfg.PythonDir = "python"

	got := paths(Compose(cfg))
	assert.Equal(t, []string{
		"/mnt/tools/prod/lib/linux/python",
		"/mnt/tools/prod/lib/python",
	}, got)
	for _, p := range got {
		assert.True(t, strings.HasSuffix(p, "/python"), "no dangling version suffix on %s", p)
	}
}

func TestComposeDuplicatesAreKept(t *testing.T) {
	// A custom env named like the dev env yields identical paths twice;
	// collapsing them is the installer's job, not the composer's.
	cfg := prodConfig()
	cfg.Dev = true
	cfg.DevEnv = "dev"
	cfg.CustomEnv = "dev"

	got := paths(Compose(cfg))
	require.Len(t, got, 12)
	assert.Equal(t, got[0], got[4])
}

func TestComposeWindowsUNCRoot(t *testing.T) {
	cfg := prodConfig()
	cfg.Root = "//tools"
	cfg.Platform = "win64"

	got := paths(Compose(cfg))
	assert.Equal(t, "//tools/prod/lib/win64/python3", got[0])
}

func TestComposeWindowsDriveRoot(t *testing.T) {
	cfg := prodConfig()
	cfg.Root = "Z:/tools"
	cfg.Platform = "win64"

	got := paths(Compose(cfg))
	assert.Equal(t, "Z:/tools/prod/lib/win64/python3", got[0])
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "/mnt/tools/prod", Sanitize(`/mnt//tools\prod`))
	assert.Equal(t, "//tools/prod", Sanitize("//tools/prod"))
	assert.Equal(t, "//tools/prod", Sanitize(`\\tools\prod`))
	assert.Equal(t, "Z:/tools", Sanitize("Z://tools"))
}

func TestEnvDir(t *testing.T) {
	cfg := prodConfig()
	assert.Equal(t, "/mnt/tools/prod/env", EnvDir(cfg))

	cfg.CustomEnv = "test"
	assert.Equal(t, "/mnt/tools/test/env", EnvDir(cfg), "highest-priority env owns the env dir")

	assert.Empty(t, EnvDir(config.Config{}))
}
