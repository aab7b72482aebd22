package publish

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config configures a Publisher.
type Config struct {
	// Bucket is the target S3 bucket.
	Bucket string

	// Prefix is prepended to every object key (e.g. "site/").
	Prefix string

	// DryRun logs planned uploads without performing them.
	DryRun bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Publisher uploads a site directory to S3.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	p := publish.New(s3.NewFromConfig(cfg), publish.Config{Bucket: "docs"})
//	n, err := p.PublishDir(ctx, "dist")
type Publisher struct {
	client ObjectPutter
	config Config
}

// New creates a Publisher.
func New(client ObjectPutter, config Config) *Publisher {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Publisher{client: client, config: config}
}

// PublishDir walks dir and uploads every file. It returns the number
// of objects uploaded (or, in dry-run mode, that would have been).
func (p *Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	if p.config.Bucket == "" {
		return 0, fmt.Errorf("publish: bucket not configured")
	}

	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := p.keyFor(rel)

		if p.config.DryRun {
			p.config.Logger.Info("would upload", "key", key, "bucket", p.config.Bucket)
			count++
			return nil
		}

		if err := p.putFile(ctx, path, key); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		p.config.Logger.Debug("uploaded", "key", key)
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	p.config.Logger.Info("site published",
		"objects", count, "bucket", p.config.Bucket, "dry_run", p.config.DryRun)
	return count, nil
}

// putFile uploads a single file.
func (p *Publisher) putFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.config.Bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String(contentTypeFor(path)),
		CacheControl: aws.String(cacheControlFor(key)),
	})
	return err
}

// keyFor maps a file path relative to the site root to its object key.
func (p *Publisher) keyFor(rel string) string {
	return p.config.Prefix + filepath.ToSlash(rel)
}

// contentTypeFor resolves the content type from the file extension.
func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cacheControlFor picks caching per object class: HTML pages change on
// every deploy, static assets can be cached for a day.
func cacheControlFor(key string) string {
	if strings.HasSuffix(key, ".html") {
		return "no-cache"
	}
	return "public, max-age=86400"
}
