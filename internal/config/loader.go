package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the project config file.
const ConfigFileName = "silt.yaml"

// ConfigFileNameAlt is the alternate name of the project config file.
const ConfigFileNameAlt = "silt.yml"

// maxUpwardSearchLevels limits how far up the directory tree FindProjectRoot
// searches before giving up.
const maxUpwardSearchLevels = 10

var configFileUsed string

// findConfigFile returns the path to silt.yaml or silt.yml in dir, or ""
// if neither exists.
func findConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir looking for a directory
// containing silt.yaml/silt.yml. Returns "" if none is found within
// maxUpwardSearchLevels.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if findConfigFile(dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
	return ""
}

// GetConfigFileUsed returns the path of the config file the most recent
// LoadConfig call read, or "" if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// LoadConfig layers a ProjectConfig from, in increasing precedence:
// built-in defaults, silt.yaml/silt.yml found under dir, SILT_-prefixed
// environment variables, and explicitly-set pflag values. flags may be
// nil when loading outside of a cobra command.
func LoadConfig(dir string, flags *pflag.FlagSet) (*ProjectConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"color":     DefaultColor,
		"verbosity": DefaultVerbosity,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	configFileUsed = findConfigFile(dir)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFileUsed, err)
		}
	}

	if err := k.Load(env.Provider("SILT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SILT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg ProjectConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}
