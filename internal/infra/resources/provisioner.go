package resources

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

// Source tags where a language resource was materialized from.
type Source string

const (
	SourceLocal    Source = "local"
	SourceBucket   Source = "bucket"
	SourceEmbedded Source = "embedded"
)

// Result describes one provisioned resource file.
type Result struct {
	Path   string
	Source Source
}

// Provisioner makes sure the stopword list exists on disk before the model
// is built: an already present local file wins, then the object store, then
// the embedded default. Repeated calls are no-ops once the file exists.
type Provisioner struct {
	cfg    config.ResourcesConfig
	client *minio.Client
	logger *slog.Logger
}

// NewProvisioner constructs the provisioner. The minio client is optional
// and only used when the bucket source is enabled.
func NewProvisioner(cfg config.ResourcesConfig, client *minio.Client, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{cfg: cfg, client: client, logger: logger.With("component", "resources.provisioner")}
}

// NewClient builds a minio client from configuration.
func NewClient(cfg config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init resource store client: %w", err)
	}
	return client, nil
}

// Ensure materializes the stopword list and returns its location.
func (p *Provisioner) Ensure(ctx context.Context) (Result, error) {
	path := filepath.Join(p.cfg.Dir, p.cfg.StopwordsFile)

	if _, err := os.Stat(path); err == nil {
		p.logger.Info("stopword list already present", "path", path)
		return Result{Path: path, Source: SourceLocal}, nil
	}

	if err := os.MkdirAll(p.cfg.Dir, 0o755); err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeResourceError, "create resources directory", err)
	}

	if p.cfg.Minio.Enabled && p.client != nil {
		err := p.client.FGetObject(ctx, p.cfg.Minio.Bucket, p.cfg.StopwordsFile, path, minio.GetObjectOptions{})
		if err == nil {
			p.logger.Info("stopword list downloaded", "bucket", p.cfg.Minio.Bucket, "path", path)
			return Result{Path: path, Source: SourceBucket}, nil
		}
		p.logger.Warn("stopword download failed, using embedded list", "error", err)
	}

	data := strings.Join(faq.DefaultStopwords(), "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeResourceError, "write embedded stopword list", err)
	}
	p.logger.Info("stopword list written from embedded default", "path", path)
	return Result{Path: path, Source: SourceEmbedded}, nil
}

// LoadStopwords ensures the resource and parses it into a word list. A file
// that turns out empty falls back to the embedded English list so the
// normalizer never runs without stopwords.
func (p *Provisioner) LoadStopwords(ctx context.Context) ([]string, error) {
	res, err := p.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceError, "read stopword list", err)
	}
	words := faq.ParseStopwords(data)
	if len(words) == 0 {
		p.logger.Warn("stopword list is empty, falling back to english", "path", res.Path)
		return faq.EnglishStopwords(), nil
	}
	return words, nil
}
