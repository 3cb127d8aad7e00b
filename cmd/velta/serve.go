package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veltaweb/velta/internal/config"
	"github.com/veltaweb/velta/pkg/assets"
	"github.com/veltaweb/velta/pkg/i18n"
	"github.com/veltaweb/velta/pkg/render"
	"github.com/veltaweb/velta/pkg/router"
	"github.com/veltaweb/velta/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a built site",
		Long: `Serve the build output: static assets with precompressed
variants, the live channel, and the health and metrics endpoints.

Page routes belong to the application binary; this command previews
the built assets of a project that has no server of its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, dev)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from velta.json)")
	cmd.Flags().BoolVar(&dev, "dev", false, "Expose error details and skip fingerprint resolution")

	return cmd
}

func runServe(addr string, dev bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Address()
	}
	dev = dev || cfg.Server.Dev

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	staticDir := filepath.Join(cfg.OutputPath(), "public")
	resolver := assets.NewPassthroughResolver(cfg.Static.Prefix + "/")
	if !dev {
		manifest, err := assets.Load(filepath.Join(cfg.OutputPath(), "manifest.json"))
		if err != nil {
			return fmt.Errorf("no build output found, run `velta build` first: %w", err)
		}
		resolver = assets.NewResolver(manifest, cfg.Static.Prefix+"/")
	}

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	h := server.New(server.Config{
		StaticDir:    staticDir,
		StaticPrefix: cfg.Static.Prefix,
		Dev:          dev,
		Document: render.Document{
			Lang:         cfg.I18n.Default,
			Title:        cfg.Name,
			ClientScript: "/_velta/client.js",
		},
		Resolver: resolver,
		I18n:     bundle,
		Logger:   log,
	}, router.New(cfg.Static.Prefix))

	info("serving %s on http://%s", staticDir, addr)
	return http.ListenAndServe(addr, h)
}

// loadBundle reads the message catalog named in velta.json. The
// catalog maps locale to key to message.
func loadBundle(cfg *config.Config) (*i18n.Bundle, error) {
	if len(cfg.I18n.Locales) == 0 {
		return nil, nil
	}

	bundle := &i18n.Bundle{
		DefaultLocale: cfg.I18n.Default,
		Locales:       cfg.I18n.Locales,
	}
	if cfg.I18n.Messages == "" {
		return bundle, nil
	}

	path := cfg.I18n.Messages
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Dir(), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}
	if err := json.Unmarshal(data, &bundle.Messages); err != nil {
		return nil, fmt.Errorf("parse message catalog %s: %w", cfg.I18n.Messages, err)
	}
	return bundle, nil
}
