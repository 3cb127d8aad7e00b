package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veltaweb/velta/internal/config"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a project in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (defaults to the directory name)")

	return cmd
}

func runInit(name string) error {
	if _, err := os.Stat(config.ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists", config.ConfigFileName)
	}

	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		name = filepath.Base(wd)
	}

	cfg := config.New()
	cfg.Name = name
	if err := cfg.SaveTo(config.ConfigFileName); err != nil {
		return err
	}
	success("wrote %s", config.ConfigFileName)

	for _, dir := range []string{cfg.Paths.Components, cfg.Paths.Public} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		info("created %s/", dir)
	}

	info("next: add components under %s/ and run `velta build`", cfg.Paths.Components)
	return nil
}
