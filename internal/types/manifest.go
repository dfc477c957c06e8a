package types

// ManifestDefaults provides run-level defaults so simple setups need
// neither a config file nor repetitive CLI flags.
type ManifestDefaults struct {
	Roots []string `yaml:"roots,omitempty"`
	Cache string   `yaml:"cache,omitempty"`
}

// ItemSpec names one probe slot and the file the prober should search
// for. Hints are extra directories tried before the standard search
// roots.
type ItemSpec struct {
	Name  string   `yaml:"name"`
	File  string   `yaml:"file"`
	Hints []string `yaml:"hints,omitempty"`
}

// VersionSpec describes where a package's version comes from and what
// constraint, if any, it must satisfy. Header is a path relative to a
// resolved include directory; Define names the macro whose quoted
// value is the version string.
type VersionSpec struct {
	Header  string        `yaml:"header,omitempty"`
	Define  string        `yaml:"define,omitempty"`
	Minimum string        `yaml:"minimum,omitempty"`
	Exact   bool          `yaml:"exact,omitempty"`
	Scheme  VersionScheme `yaml:"scheme,omitempty"`
}

// Constraint returns the version constraint carried by the spec.
func (v VersionSpec) Constraint() VersionConstraint {
	return VersionConstraint{Minimum: v.Minimum, Exact: v.Exact, Scheme: v.Scheme}
}

// PackageSpec describes detection of one external package.
type PackageSpec struct {
	Prefix    string      `yaml:"prefix"`
	Required  bool        `yaml:"required,omitempty"`
	Headers   []ItemSpec  `yaml:"headers,omitempty"`
	Libraries []ItemSpec  `yaml:"libraries,omitempty"`
	Version   VersionSpec `yaml:"version,omitempty"`

	// PkgConfig names a pkg-config module consulted for version and
	// search-path hints before probing.
	PkgConfig string `yaml:"pkg_config,omitempty"`

	// Forward lists nested packages located through the generic
	// locator with this package's required flag propagated.
	Forward []string `yaml:"forward,omitempty"`
}

type Manifest struct {
	APIVersion string           `yaml:"api_version"`
	Defaults   ManifestDefaults `yaml:"defaults,omitempty"`
	Packages   []PackageSpec    `yaml:"packages"`
}
