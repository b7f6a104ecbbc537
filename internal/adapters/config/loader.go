// Package config loads the optional user settings file from the cache root.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"runtime"

	"github.com/cargotags/cargotags/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Settings is the resolved process-wide configuration. It is built once at
// startup and passed explicitly to every component that needs it.
type Settings struct {
	// CtagsBin is the tag extractor binary to invoke.
	CtagsBin string

	// Parallelism bounds concurrent extractor invocations.
	Parallelism int

	// Ignore lists extra directory or file name patterns skipped while
	// walking source trees.
	Ignore []string

	// Layout locates artifacts, state, and the shared std-lib tags inside
	// the cache root.
	Layout domain.CacheLayout
}

// settingsFile mirrors the YAML shape of <cache root>/config.yaml.
type settingsFile struct {
	Ctags       string   `yaml:"ctags"`
	Parallelism int      `yaml:"parallelism"`
	Ignore      []string `yaml:"ignore"`
}

// Load resolves the cache root, reads <cache root>/config.yaml when present,
// and fills in defaults. A missing file is not an error; a malformed one is.
func Load() (*Settings, error) {
	root, err := domain.DefaultCacheRoot()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve cache root")
	}
	return LoadFrom(root)
}

// LoadFrom loads settings for an explicit cache root.
func LoadFrom(cacheRoot string) (*Settings, error) {
	settings := &Settings{
		CtagsBin:    "ctags",
		Parallelism: runtime.NumCPU(),
		Layout:      domain.CacheLayout{Root: cacheRoot},
	}

	data, err := os.ReadFile(settings.Layout.ConfigPath())
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Ctags != "" {
		settings.CtagsBin = file.Ctags
	}
	if file.Parallelism > 0 {
		settings.Parallelism = file.Parallelism
	}
	settings.Ignore = file.Ignore

	return settings, nil
}
