package build

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/veltaweb/velta/internal/config"
)

type uploaded struct {
	key             string
	contentType     string
	contentEncoding string
	body            string
}

type fakeS3 struct {
	objects []uploaded
	fail    bool
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail {
		return nil, errors.New("access denied")
	}
	body, _ := io.ReadAll(in.Body)
	obj := uploaded{key: *in.Key, body: string(body)}
	if in.ContentType != nil {
		obj.contentType = *in.ContentType
	}
	if in.ContentEncoding != nil {
		obj.contentEncoding = *in.ContentEncoding
	}
	f.objects = append(f.objects, obj)
	return &s3.PutObjectOutput{}, nil
}

func TestPublishUploadsPublicDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "app.1234abcd.css"), []byte("body{}"), 0o644)
	os.WriteFile(filepath.Join(dir, "app.1234abcd.css.gz"), []byte("gzbytes"), 0o644)
	os.MkdirAll(filepath.Join(dir, "components"), 0o755)
	os.WriteFile(filepath.Join(dir, "components", "counter.ff00aa11.go"), []byte("package c"), 0o644)

	fake := &fakeS3{}
	n, err := Publish(context.Background(), fake, &config.S3Config{
		Bucket: "assets",
		Prefix: "site/",
	}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("uploaded %d objects", n)
	}

	keys := make([]string, len(fake.objects))
	byKey := map[string]uploaded{}
	for i, o := range fake.objects {
		keys[i] = o.key
		byKey[o.key] = o
	}
	sort.Strings(keys)

	want := []string{
		"site/app.1234abcd.css",
		"site/app.1234abcd.css.gz",
		"site/components/counter.ff00aa11.go",
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key %d: got %q, want %q", i, keys[i], k)
		}
	}

	css := byKey["site/app.1234abcd.css"]
	if css.contentType != "text/css; charset=utf-8" {
		t.Errorf("css content type %q", css.contentType)
	}
	gz := byKey["site/app.1234abcd.css.gz"]
	if gz.contentEncoding != "gzip" {
		t.Errorf("gz content encoding %q", gz.contentEncoding)
	}
	if gz.contentType != "text/css; charset=utf-8" {
		t.Errorf("gz content type %q", gz.contentType)
	}
}

func TestPublishPropagatesFailure(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644)

	_, err := Publish(context.Background(), &fakeS3{fail: true}, &config.S3Config{Bucket: "b"}, dir)
	if err == nil {
		t.Error("expected upload failure")
	}
}
