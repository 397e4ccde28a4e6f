package site

import (
	"regexp"
	"strings"

	"sitepath/internal/config"
)

// Sep is the path separator used in composed candidates, on every platform.
// Deployment trees are addressed with forward slashes even on windows.
const Sep = "/"

var sepRuns = regexp.MustCompile(`[\\/]+`)

// Sanitize collapses repeated separators to a single forward slash. A leading
// double slash is kept so UNC roots like //tool survive.
func Sanitize(path string) string {
	clean := sepRuns.ReplaceAllString(path, Sep)
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, `\\`) {
		clean = Sep + clean
	}
	return clean
}

// Join composes path segments with forward slashes and sanitizes the result.
func Join(parts ...string) string {
	return Sanitize(strings.Join(parts, Sep))
}

// Compose produces the ordered candidate list for the configuration, most
// specific first, across all active environments. No existence filtering and
// no cross-environment deduplication happens here; positionally meaningful
// duplicates are left for the installer to collapse.
func Compose(cfg config.Config) []Candidate {
	var out []Candidate
	for _, env := range cfg.Environments() {
		out = append(out, composeRoot(cfg, env, Join(cfg.Root, env, "lib"))...)
	}
	return out
}

// composeRoot emits the four candidates under a single environment lib root.
// When the configuration is version-agnostic the versioned templates would
// collapse into the agnostic ones, so only two candidates are emitted rather
// than a pair with a dangling version suffix.
func composeRoot(cfg config.Config, env, libRoot string) []Candidate {
	versioned := cfg.PythonDir != "python"
	var out []Candidate

	// platform and python version specific (highest priority)
	if versioned {
		out = append(out, Candidate{
			Path:             Join(libRoot, cfg.Platform, cfg.PythonDir),
			Env:              env,
			PlatformSpecific: true,
			Versioned:        true,
		})
	}

	// platform specific, python version agnostic
	out = append(out, Candidate{
		Path:             Join(libRoot, cfg.Platform, "python"),
		Env:              env,
		PlatformSpecific: true,
	})

	// platform agnostic, python version specific
	if versioned {
		out = append(out, Candidate{
			Path:      Join(libRoot, cfg.PythonDir),
			Env:       env,
			Versioned: true,
		})
	}

	// platform and python version agnostic (lowest priority)
	out = append(out, Candidate{
		Path: Join(libRoot, "python"),
		Env:  env,
	})

	return out
}

// EnvDir returns the companion environment-stack directory for the highest
// priority active environment, or "" when no environment is active.
func EnvDir(cfg config.Config) string {
	envs := cfg.Environments()
	if len(envs) == 0 {
		return ""
	}
	return Join(cfg.Root, envs[0], "env")
}
