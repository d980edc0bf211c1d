package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

type Config struct {
	SourceDir   string
	TargetDir   string
	DryRun      bool
	Verbose     bool
	Interactive bool
}

// BindFlags registers the command line flags that fill cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Print the moves without touching any file")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Show progress in a terminal UI")
}

// Resolve applies environment fallbacks and turns source and target into
// absolute paths with symlinks evaluated.
func Resolve(cfg Config) (Config, error) {
	if !cfg.Verbose {
		cfg.Verbose = envTruthy("PHOTOSORT_VERBOSE")
	}
	if !cfg.DryRun {
		cfg.DryRun = envTruthy("PHOTOSORT_DRY_RUN")
	}

	if strings.TrimSpace(cfg.SourceDir) == "" || strings.TrimSpace(cfg.TargetDir) == "" {
		return Config{}, errors.New("source and target are required")
	}

	var err error
	if cfg.SourceDir, err = Canonical(cfg.SourceDir); err != nil {
		return Config{}, err
	}
	if cfg.TargetDir, err = Canonical(cfg.TargetDir); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Canonical works like realpath(3) but accepts paths that do not exist yet:
// symlinks are evaluated on the longest existing prefix and the rest is
// appended unchanged.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	existing := abs
	var rest []string
	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
