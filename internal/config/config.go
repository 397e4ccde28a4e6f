// Package config loads the deployment configuration from environment
// variables. Every variable has a documented default; a missing or malformed
// value falls back to its default and is never fatal, since this runs
// unconditionally at startup.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvDirVar is the variable a companion environment-stack tool reads to find
// its default .env file directory. We only report a value for it; the
// companion tool owns its consumption.
const EnvDirVar = "DEFAULT_ENV_DIR"

// Defaults for the environment variable contract.
const (
	DefaultDeployRoot  = "tool"
	DefaultDevEnv      = "dev"
	DefaultProdEnv     = "prod"
	DefaultPyVersion   = "3"
	DefaultDriveLetter = "Z"
)

// Config is the immutable configuration record, assembled once per process.
type Config struct {
	// DeployRoot is the deployment directory name without its mount point
	// prefix, e.g. "tool" when libs live under /mnt/tool.
	DeployRoot string

	// Root is the full base deployment path, e.g. /mnt/tool. Derived from
	// DeployRoot and the platform when $ROOT is unset.
	Root string

	// CustomEnv is an extra environment name ($ENV) searched ahead of dev
	// and prod. Empty means no custom environment.
	CustomEnv string

	// Dev reports whether the development environment is active ($DEV).
	Dev bool

	// DevEnv and ProdEnv are the development and production environment
	// names ($DEV_ENV, $PROD_ENV).
	DevEnv  string
	ProdEnv string

	// Platform is the platform directory name: linux, osx or win64.
	Platform string

	// PyVersion is the interpreter major version. Empty means
	// version-agnostic: no python<version> candidates are emitted.
	PyVersion string

	// PythonDir is the versioned python directory name, e.g. python3.
	// Defaults from PyVersion; collapses to "python" when PyVersion is empty.
	PythonDir string

	// Windows root composition knobs.
	DriveLetter string
	UseUNC      bool
}

// Load reads the environment and returns the resolved configuration.
func Load() Config {
	return load(runtime.GOOS)
}

// load is Load with the host OS injected so tests can cover all platforms.
func load(goos string) Config {
	v := viper.New()
	v.AllowEmptyEnv(true) // PYVERSION="" means version-agnostic, not unset

	v.SetDefault("deploy_root", DefaultDeployRoot)
	v.SetDefault("dev_env", DefaultDevEnv)
	v.SetDefault("prod_env", DefaultProdEnv)
	v.SetDefault("pyversion", DefaultPyVersion)
	v.SetDefault("drive_letter", DefaultDriveLetter)

	v.BindEnv("deploy_root", "DEPLOY_ROOT")
	v.BindEnv("root", "ROOT")
	v.BindEnv("env", "ENV")
	v.BindEnv("dev", "DEV")
	v.BindEnv("dev_env", "DEV_ENV")
	v.BindEnv("prod_env", "PROD_ENV")
	v.BindEnv("platform", "PLATFORM", "OS")
	v.BindEnv("pyversion", "PYVERSION")
	v.BindEnv("python_dir", "PYTHON_DIR")
	v.BindEnv("drive_letter", "DRIVE_LETTER")
	v.BindEnv("use_unc", "USE_UNC")

	// GetBool tolerates garbage (DEV=banana reads as false), which is what
	// we want: misconfiguration degrades to the default, never to a failure.
	cfg := Config{
		DeployRoot:  v.GetString("deploy_root"),
		Root:        v.GetString("root"),
		CustomEnv:   v.GetString("env"),
		Dev:         v.GetBool("dev"),
		DevEnv:      v.GetString("dev_env"),
		ProdEnv:     v.GetString("prod_env"),
		Platform:    v.GetString("platform"),
		PyVersion:   v.GetString("pyversion"),
		PythonDir:   v.GetString("python_dir"),
		DriveLetter: v.GetString("drive_letter"),
		UseUNC:      v.GetBool("use_unc"),
	}

	// The deploy root is a name under a mount point, never absolute.
	cfg.DeployRoot = strings.TrimLeft(cfg.DeployRoot, `/\`)
	if cfg.DeployRoot == "" {
		cfg.DeployRoot = DefaultDeployRoot
	}
	if cfg.DevEnv == "" {
		cfg.DevEnv = DefaultDevEnv
	}
	if cfg.ProdEnv == "" {
		cfg.ProdEnv = DefaultProdEnv
	}
	if cfg.DriveLetter == "" {
		cfg.DriveLetter = DefaultDriveLetter
	}
	if cfg.Platform == "" {
		cfg.Platform = defaultPlatform(goos)
	}
	if cfg.Root == "" {
		cfg.Root = defaultRoot(goos, cfg)
	}
	if cfg.PythonDir == "" {
		if cfg.PyVersion == "" {
			cfg.PythonDir = "python"
		} else {
			cfg.PythonDir = "python" + cfg.PyVersion
		}
	}
	return cfg
}

// Environments returns the active environment names in search priority order:
// custom first, then dev, then prod. Prod is always present; custom and dev
// supersede it, they never replace it. A custom name equal to the prod name
// is ignored, and the dev entry is skipped when the dev and prod names
// collide.
func (c Config) Environments() []string {
	var envs []string
	if c.CustomEnv != "" && c.CustomEnv != c.ProdEnv {
		envs = append(envs, c.CustomEnv)
	}
	if c.Dev && c.DevEnv != c.ProdEnv {
		envs = append(envs, c.DevEnv)
	}
	if c.ProdEnv != "" {
		envs = append(envs, c.ProdEnv)
	}
	return envs
}

// defaultPlatform maps a GOOS value to the platform directory name used in
// deployment trees.
func defaultPlatform(goos string) string {
	switch goos {
	case "windows":
		return "win64"
	case "darwin":
		return "osx"
	default:
		return "linux"
	}
}

// defaultRoot derives the base deployment path for the host platform. On
// windows the root is either a drive-letter path (Z:/tool) or, under UNC
// mode, a network share (//tool).
func defaultRoot(goos string, cfg Config) string {
	switch goos {
	case "windows":
		if cfg.UseUNC {
			return "//" + cfg.DeployRoot
		}
		return cfg.DriveLetter + ":/" + cfg.DeployRoot
	case "darwin":
		return "/Volumes/" + cfg.DeployRoot
	default:
		return "/mnt/" + cfg.DeployRoot
	}
}
