package server

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/veltaweb/velta/pkg/assets"
	"github.com/veltaweb/velta/pkg/i18n"
	"github.com/veltaweb/velta/pkg/render"
)

// Config configures a Handler. It is an explicit value; tests override
// behavior by constructing their own.
type Config struct {
	// StaticDir is the directory holding built assets. Empty disables
	// static serving.
	StaticDir string

	// StaticPrefix is the URL prefix assets are served under.
	// Defaults to /static.
	StaticPrefix string

	// Dev exposes error details on the 5xx page.
	Dev bool

	// Document is the base HTML shell pages render into.
	Document render.Document

	// Resolver maps asset names to fingerprinted URLs. Defaults to a
	// passthrough resolver over StaticPrefix.
	Resolver assets.Resolver

	// I18n optionally resolves request locales.
	I18n *i18n.Bundle

	// Logger receives request diagnostics. Defaults to slog.Default.
	Logger *slog.Logger

	// Registry receives the server metrics. Defaults to the global
	// prometheus registerer.
	Registry prometheus.Registerer
}

func (c *Config) applyDefaults() {
	if c.StaticPrefix == "" {
		c.StaticPrefix = "/static"
	}
	if c.Resolver == nil {
		c.Resolver = assets.NewPassthroughResolver(c.StaticPrefix + "/")
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Registry == nil {
		c.Registry = prometheus.DefaultRegisterer
	}
}
