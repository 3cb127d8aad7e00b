package build

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/veltaweb/velta/internal/config"
	"github.com/veltaweb/velta/internal/errors"
)

// S3API is the slice of the S3 client the publisher needs.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publish uploads every file under publicDir to the configured
// bucket. Gzip siblings upload with a Content-Encoding so CDNs can
// serve them directly. Returns the number of uploaded objects.
func Publish(ctx context.Context, client S3API, cfg *config.S3Config, publicDir string) (int, error) {
	count := 0
	err := filepath.Walk(publicDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(publicDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		key := cfg.Prefix + rel
		input := &s3.PutObjectInput{
			Bucket:      aws.String(cfg.Bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(contentTypeFor(rel)),
		}
		if strings.HasSuffix(rel, ".gz") {
			input.ContentEncoding = aws.String("gzip")
		}

		if _, err := client.PutObject(ctx, input); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, errors.New("V204").Wrap(err)
	}
	return count, nil
}

// contentTypeFor resolves the MIME type of an uploaded asset. Gzip
// siblings report the type of the underlying asset.
func contentTypeFor(name string) string {
	name = strings.TrimSuffix(name, ".gz")
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
