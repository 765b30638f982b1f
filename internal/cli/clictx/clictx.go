// Package clictx holds the context keys/accessors shared between
// internal/cli (which constructs them once in PersistentPreRunE) and
// internal/cli/commands (which reads them back) — split into its own
// package so neither side has to import the other.
package clictx

import (
	"context"
	"os"

	"github.com/silt-lang/silt/internal/config"
	"github.com/silt-lang/silt/internal/diagnostic"
)

type stylesKey struct{}

type projectConfigKey struct{}

// WithStyles returns a copy of ctx carrying styles.
func WithStyles(ctx context.Context, styles *diagnostic.Styles) context.Context {
	return context.WithValue(ctx, stylesKey{}, styles)
}

// Styles retrieves the styles constructed in PersistentPreRunE, falling
// back to no-color styles against os.Stdout so a command invoked outside
// the normal cobra tree (e.g. in a test) still renders something.
func Styles(ctx context.Context) *diagnostic.Styles {
	if s, ok := ctx.Value(stylesKey{}).(*diagnostic.Styles); ok && s != nil {
		return s
	}
	return diagnostic.NewStyles(os.Stdout, true)
}

// WithProjectConfig returns a copy of ctx carrying cfg.
func WithProjectConfig(ctx context.Context, cfg *config.ProjectConfig) context.Context {
	return context.WithValue(ctx, projectConfigKey{}, cfg)
}

// ProjectConfig retrieves the ProjectConfig loaded in PersistentPreRunE,
// falling back to built-in defaults.
func ProjectConfig(ctx context.Context) *config.ProjectConfig {
	if c, ok := ctx.Value(projectConfigKey{}).(*config.ProjectConfig); ok && c != nil {
		return c
	}
	cfg := &config.ProjectConfig{}
	cfg.ApplyDefaults()
	return cfg
}
