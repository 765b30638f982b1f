package config

// Default configuration values, applied before silt.yaml/env/flags are
// layered on top.
const (
	DefaultSearchPath = "."
	DefaultColor      = "auto"
	DefaultVerbosity  = "note"
)

// ApplyDefaults fills in zero-valued fields of a ProjectConfig. Unlike
// file/env/flag layering, this runs after Unmarshal so a partially
// specified silt.yaml still ends up with a usable configuration.
func (c *ProjectConfig) ApplyDefaults() {
	if len(c.SearchPaths) == 0 {
		c.SearchPaths = []string{DefaultSearchPath}
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.Verbosity == "" {
		c.Verbosity = DefaultVerbosity
	}
}
