package build

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veltaweb/velta/internal/config"
	verrors "github.com/veltaweb/velta/internal/errors"
)

const counterSource = `package components

import (
	"github.com/veltaweb/velta/el"
	"github.com/veltaweb/velta/pkg/reactive"
)

func Counter(props el.Props) el.Node {
	count := reactive.NewSignal(0)
	return el.Div(
		el.Class("counter"),
		el.Button(el.On("click", func() { count.Set(count.Peek() + 1) }), el.Text("+")),
	)
}
`

func testProject(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	componentsDir := filepath.Join(dir, "app", "components")
	if err := os.MkdirAll(componentsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(componentsDir, "counter.go"), []byte(counterSource), 0o644); err != nil {
		t.Fatal(err)
	}

	publicDir := filepath.Join(dir, "public")
	if err := os.MkdirAll(filepath.Join(publicDir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(publicDir, "app.css"), []byte("body { margin: 0 }"), 0o644)
	os.WriteFile(filepath.Join(publicDir, "img", "logo.svg"), []byte("<svg/>"), 0o644)

	return cfg
}

func TestBuildProducesBundlesAndAssets(t *testing.T) {
	cfg := testProject(t)

	var steps []string
	b := New(cfg, Options{OnProgress: func(s string) { steps = append(steps, s) }})
	result, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.Bundles != 1 {
		t.Errorf("got %d bundles", result.Bundles)
	}
	if result.Assets != 2 {
		t.Errorf("got %d assets", result.Assets)
	}
	if len(steps) == 0 {
		t.Error("no progress reported")
	}

	// The bundle is fingerprinted and in tuple form.
	bundleRel := result.Manifest.Resolve("components/counter.go")
	if bundleRel == "components/counter.go" {
		t.Fatal("bundle not fingerprinted")
	}
	data, err := os.ReadFile(filepath.Join(result.Public, filepath.FromSlash(bundleRel)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `client.N("div"`) {
		t.Errorf("bundle not transpiled:\n%s", data)
	}
	if !strings.Contains(string(data), `client.Define("v-counter", Counter)`) {
		t.Errorf("bundle missing registration:\n%s", data)
	}

	// Static assets keep their directory structure.
	logoRel := result.Manifest.Resolve("img/logo.svg")
	if !strings.HasPrefix(logoRel, "img/logo.") || !strings.HasSuffix(logoRel, ".svg") {
		t.Errorf("got %q", logoRel)
	}

	// Manifest written to disk.
	if _, err := os.Stat(filepath.Join(cfg.OutputPath(), "manifest.json")); err != nil {
		t.Error("manifest.json missing")
	}
}

func TestBuildWritesGzipSiblings(t *testing.T) {
	cfg := testProject(t)

	result, err := New(cfg, Options{}).Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Every output file has a .gz sibling with identical content.
	err = filepath.Walk(result.Public, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || strings.HasSuffix(path, ".gz") {
			return err
		}

		zf, err := os.Open(path + ".gz")
		if err != nil {
			t.Errorf("no gzip sibling for %s", path)
			return nil
		}
		defer zf.Close()

		zr, err := gzip.NewReader(zf)
		if err != nil {
			t.Errorf("%s.gz: %v", path, err)
			return nil
		}
		defer zr.Close()

		unzipped, err := io.ReadAll(zr)
		if err != nil {
			t.Errorf("%s.gz: %v", path, err)
			return nil
		}
		plain, _ := os.ReadFile(path)
		if string(unzipped) != string(plain) {
			t.Errorf("gzip sibling of %s does not match", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestBuildCleansPreviousOutput(t *testing.T) {
	cfg := testProject(t)

	stale := filepath.Join(cfg.OutputPath(), "public", "stale.txt")
	os.MkdirAll(filepath.Dir(stale), 0o755)
	os.WriteFile(stale, []byte("old"), 0o644)

	if _, err := New(cfg, Options{}).Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("previous output not cleaned")
	}
}

func TestBuildFailsOnBadComponent(t *testing.T) {
	cfg := testProject(t)
	bad := filepath.Join(cfg.ComponentsPath(), "broken.go")
	os.WriteFile(bad, []byte("package components\nfunc {"), 0o644)

	_, err := New(cfg, Options{}).Build(context.Background())
	if err == nil {
		t.Fatal("expected build failure for unparsable component")
	}
	var ve *verrors.Error
	if !errors.As(err, &ve) || ve.Code != "V300" {
		t.Errorf("parse failure should carry code V300, got %v", err)
	}
}

func TestBuildReportsServerConstructComponent(t *testing.T) {
	cfg := testProject(t)
	src := `package components

import (
	"github.com/veltaweb/velta/el"
	"github.com/veltaweb/velta/pkg/jsx"
)

func Bad(ctx *jsx.Context, props el.Props) el.Node {
	return el.Div(el.Text(ctx.Path()))
}
`
	bad := filepath.Join(cfg.ComponentsPath(), "bad.go")
	os.WriteFile(bad, []byte(src), 0o644)

	_, err := New(cfg, Options{}).Build(context.Background())
	if err == nil {
		t.Fatal("expected build failure for server-only construct")
	}
	var ve *verrors.Error
	if !errors.As(err, &ve) || ve.Code != "V301" {
		t.Errorf("server-construct rejection should carry code V301, got %v", err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := testProject(t)
	b := New(cfg, Options{})

	r1, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	first := r1.Manifest.All()

	r2, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second := r2.Manifest.All()

	if len(first) != len(second) {
		t.Fatalf("entry counts differ: %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Errorf("%s: %q vs %q", k, v, second[k])
		}
	}
}

func TestCleanRemovesOutput(t *testing.T) {
	cfg := testProject(t)
	b := New(cfg, Options{})
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := b.Clean(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.OutputPath()); !os.IsNotExist(err) {
		t.Error("output dir still present")
	}
}
