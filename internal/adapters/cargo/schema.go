package cargo

// manifestFile mirrors the parts of Cargo.toml the reader needs: the package
// name and the locations of direct path dependencies.
type manifestFile struct {
	Package      packageSection            `toml:"package"`
	Dependencies map[string]dependencySpec `toml:"dependencies"`
	DevDeps      map[string]dependencySpec `toml:"dev-dependencies"`
	BuildDeps    map[string]dependencySpec `toml:"build-dependencies"`
}

type packageSection struct {
	Name string `toml:"name"`
}

// dependencySpec is either a bare version string or an inline table. TOML
// decoding into an interface keeps both shapes readable; pathOf picks out the
// path key when present.
type dependencySpec any

func pathOf(spec dependencySpec) string {
	table, ok := spec.(map[string]any)
	if !ok {
		return ""
	}
	path, _ := table["path"].(string)
	return path
}

// lockFile mirrors Cargo.lock (format versions 2 and up).
type lockFile struct {
	Version  int           `toml:"version"`
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`

	// Source is absent for the workspace's own packages.
	Source string `toml:"source"`

	// Dependencies entries are "name", "name version", or
	// "name version (source)".
	Dependencies []string `toml:"dependencies"`
}
