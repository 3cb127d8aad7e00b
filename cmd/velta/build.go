package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/veltaweb/velta/internal/build"
	"github.com/veltaweb/velta/internal/config"
)

func buildCmd() *cobra.Command {
	var (
		output  string
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile components and assets for production",
		Long: `Compile the project into the output directory.

This command:
  • Transpiles server components into web component bundles
  • Copies static assets with content fingerprints
  • Writes a precompressed .gz sibling for every output
  • Generates the asset manifest

Examples:
  velta build
  velta build --output=dist
  velta build --publish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, publish)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from velta.json)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upload the build to the configured S3 bucket")

	return cmd
}

func runBuild(output string, publish bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Build.Output = output
	}
	if publish && cfg.Build.S3 == nil {
		return fmt.Errorf("--publish requires a build.s3 section in %s", config.ConfigFileName)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	builder := build.New(cfg, build.Options{
		OnProgress: func(step string) { info(step) },
	})

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	success("Build complete in %s", result.Duration.Round(time.Millisecond))
	info("%d component bundle(s), %d asset(s)", result.Bundles, result.Assets)
	info("output: %s", cfg.Build.Output)

	if publish {
		n, err := runPublish(ctx, cfg, result.Public)
		if err != nil {
			return err
		}
		success("Published %d object(s) to s3://%s/%s", n, cfg.Build.S3.Bucket, cfg.Build.S3.Prefix)
	}

	return nil
}

func runPublish(ctx context.Context, cfg *config.Config, publicDir string) (int, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Build.S3.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Build.S3.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return 0, fmt.Errorf("load aws config: %w", err)
	}
	return build.Publish(ctx, s3.NewFromConfig(awsCfg), cfg.Build.S3, publicDir)
}
