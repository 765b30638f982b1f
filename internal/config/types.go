// Package config loads a Silt project's silt.yaml: search paths, default
// module roots, the CLI's default color mode, and diagnostic verbosity.
// It has no cobra import; LoadConfig takes a *pflag.FlagSet only to
// overlay flags that were explicitly set, so internal/cli and any future
// embedder can load the same file shape.
package config

// ProjectConfig is everything a Silt project's silt.yaml can declare.
type ProjectConfig struct {
	// SearchPaths are directories searched for ".silt" source files,
	// relative to the project root unless absolute.
	SearchPaths []string `koanf:"search_paths"`

	// ModuleRoots maps a directory prefix to the module-path prefix its
	// files are expected to declare, e.g. "src" -> "" lets "src/List.silt"
	// declare "module List where" instead of "module src.List where".
	ModuleRoots map[string]string `koanf:"module_roots"`

	// Color selects the default color mode absent --no-color/SILT_NO_COLOR:
	// "auto" (detect via termenv), "always", or "never".
	Color string `koanf:"color"`

	// Verbosity names a diagnostic severity: "note", "warning", or
	// "error". It is loaded and defaulted here, but the diagnostic printer
	// does not consult it: every diagnostic is printed whatever its value.
	Verbosity string `koanf:"verbosity"`
}
