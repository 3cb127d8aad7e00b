// Package build is the asset compiler. A build cleans the output
// directory, runs every web component source through the transpiler
// into a client bundle, copies static assets, fingerprints everything
// with a content hash, and writes a gzip sibling next to every output
// so the server can serve precompressed bytes.
package build

import (
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/veltaweb/velta/internal/config"
	"github.com/veltaweb/velta/internal/errors"
	"github.com/veltaweb/velta/pkg/assets"
	"github.com/veltaweb/velta/pkg/transpile"
)

// Options configures a build.
type Options struct {
	// OnProgress is called with step descriptions as the build runs.
	OnProgress func(step string)

	// Logger receives build diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// Result describes a finished build.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Public is the directory holding the built assets.
	Public string

	// Manifest maps source names to fingerprinted outputs.
	Manifest *assets.Manifest

	// Bundles is the number of transpiled component bundles.
	Bundles int

	// Assets is the number of copied static assets.
	Assets int
}

// Builder runs builds for one project configuration.
type Builder struct {
	cfg  *config.Config
	opts Options
	log  *slog.Logger
}

// New creates a builder.
func New(cfg *config.Config, opts Options) *Builder {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Builder{cfg: cfg, opts: opts, log: log}
}

// Build runs a full build.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{Manifest: assets.NewManifest()}

	outputDir := b.cfg.OutputPath()
	publicDir := filepath.Join(outputDir, "public")

	b.progress("cleaning output directory")
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, errors.New("V200").Wrap(err)
	}
	if err := os.MkdirAll(publicDir, 0o755); err != nil {
		return nil, errors.New("V200").Wrap(err)
	}

	b.progress("transpiling components")
	bundles, err := b.transpileComponents(ctx, publicDir, result.Manifest)
	if err != nil {
		return nil, err
	}
	result.Bundles = bundles

	b.progress("copying static assets")
	copied, err := b.copyAssets(ctx, publicDir, result.Manifest)
	if err != nil {
		return nil, err
	}
	result.Assets = copied

	b.progress("writing manifest")
	if err := result.Manifest.Save(filepath.Join(outputDir, "manifest.json")); err != nil {
		return nil, errors.FromError(err, "V203")
	}

	result.Duration = time.Since(start)
	result.Public = publicDir
	b.log.Info("build finished",
		"bundles", result.Bundles,
		"assets", result.Assets,
		"duration", result.Duration)
	return result, nil
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.cfg.OutputPath())
}

// transpileComponents turns every component source under the
// components dir into a fingerprinted client bundle.
func (b *Builder) transpileComponents(ctx context.Context, publicDir string, m *assets.Manifest) (int, error) {
	srcDir := b.cfg.ComponentsPath()
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return 0, nil
	}

	outDir := filepath.Join(publicDir, "components")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, errors.New("V200").Wrap(err)
	}

	count := 0
	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := transpile.TranspileWebComponent(string(src))
		if err != nil {
			code := "V300"
			if transpile.IsServerConstruct(err) {
				code = "V301"
			}
			return errors.New(code).
				WithDetail(fmt.Sprintf("%s: %v", path, err)).
				Wrap(err)
		}

		base := strings.TrimSuffix(filepath.Base(path), ".go")
		hashed := fmt.Sprintf("%s.%s.go", base, hashBytes([]byte(out)))
		dest := filepath.Join(outDir, hashed)
		if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
			return err
		}
		if err := gzipSibling(dest); err != nil {
			return err
		}

		m.Set("components/"+base+".go", "components/"+hashed)
		b.log.Debug("transpiled component", "source", path, "bundle", hashed)
		count++
		return nil
	})
	if err != nil {
		return count, errors.FromError(err, "V201")
	}
	return count, nil
}

// copyAssets copies the public dir into the output with content-hash
// fingerprints and gzip siblings.
func (b *Builder) copyAssets(ctx context.Context, publicDir string, m *assets.Manifest) (int, error) {
	srcDir := b.cfg.PublicPath()
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		ext := filepath.Ext(rel)
		hashedRel := strings.TrimSuffix(rel, ext) + "." + hash + ext

		dest := filepath.Join(publicDir, filepath.FromSlash(hashedRel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := copyFile(path, dest); err != nil {
			return err
		}
		if err := gzipSibling(dest); err != nil {
			return err
		}

		m.Set(rel, hashedRel)
		count++
		return nil
	})
	if err != nil {
		return count, errors.FromError(err, "V201")
	}
	return count, nil
}

func (b *Builder) progress(step string) {
	if b.opts.OnProgress != nil {
		b.opts.OnProgress(step)
	}
}

// gzipSibling writes path.gz next to path with best compression.
func gzipSibling(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return errors.New("V202").Wrap(err)
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return errors.New("V202").Wrap(err)
	}
	defer out.Close()

	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return errors.New("V202").Wrap(err)
	}
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		return errors.New("V202").Wrap(err)
	}
	return zw.Close()
}

// hashBytes returns the short content hash used in filenames.
func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:8]
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil))[:8], nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
