package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	"github.com/yanqian/faq-chatbot/internal/infra/faqrepo"
	"github.com/yanqian/faq-chatbot/internal/infra/faqstore"
	"github.com/yanqian/faq-chatbot/internal/infra/resources"
)

func provideResourceClient(cfg *config.Config, logger *slog.Logger) *minio.Client {
	if !cfg.Resources.Minio.Enabled {
		return nil
	}
	client, err := resources.NewClient(cfg.Resources.Minio)
	if err != nil {
		logger.Error("resource store client unavailable, using embedded resources", "error", err)
		return nil
	}
	return client
}

func provideProvisioner(cfg *config.Config, client *minio.Client, logger *slog.Logger) *resources.Provisioner {
	return resources.NewProvisioner(cfg.Resources, client, logger)
}

func provideStopwords(p *resources.Provisioner) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return p.LoadStopwords(ctx)
}

func provideFAQConfig(cfg *config.Config, stopwords []string) faq.Config {
	return faq.Config{
		Mode:                faq.EmbeddingMode(cfg.Chatbot.Mode),
		VectorSize:          cfg.Chatbot.VectorSize,
		Window:              cfg.Chatbot.Window,
		MinCount:            cfg.Chatbot.MinCount,
		Epochs:              cfg.Chatbot.Epochs,
		Seed:                cfg.Chatbot.Seed,
		SimilarityThreshold: cfg.Chatbot.SimilarityThreshold,
		FallbackAnswer:      cfg.Chatbot.FallbackAnswer,
		TopRecommendations:  cfg.Chatbot.TopRecommendations,
		Stopwords:           stopwords,
	}
}

func provideCatalogRepository(cfg *config.Config, logger *slog.Logger) faq.CatalogRepository {
	fallback := faqrepo.NewFileRepository(cfg.Catalog.Path)
	dsn := strings.TrimSpace(cfg.Catalog.Postgres.DSN)
	if dsn == "" {
		logger.Info("catalog postgres dsn not set, loading catalog from file", "path", cfg.Catalog.Path)
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, loading catalog from file", "error", err)
		return fallback
	}
	if cfg.Catalog.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Catalog.Postgres.MaxConns
	}
	if cfg.Catalog.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Catalog.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, loading catalog from file", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, loading catalog from file", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("catalog postgres repository enabled")
	return faqrepo.NewPostgresRepository(pool)
}

func provideCatalog(repo faq.CatalogRepository) ([]faq.Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return repo.Load(ctx)
}

func provideFAQStore(cfg *config.Config, logger *slog.Logger) faq.Store {
	if cfg.Trending.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return faqstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return faqstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("trending valkey store enabled", "addr", cfg.Trending.Addr)
			return faqstore.NewValkeyStore(client, "faq")
		}
	}
	return faqstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Trending.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Trending.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Trending.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideFAQService(
	faqCfg faq.Config,
	entries []faq.Entry,
	store faq.Store,
	repo faq.CatalogRepository,
	cfg *config.Config,
	logger *slog.Logger,
) (faq.Service, error) {
	svc, err := faq.NewService(faqCfg, entries, store, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Catalog.Postgres.SaveVectors {
		if writer, ok := repo.(faq.VectorWriter); ok {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := writer.SaveVectors(ctx, entries, svc.Vectors()); err != nil {
				logger.Warn("persisting catalog vectors failed", "error", err)
			} else {
				logger.Info("catalog vectors persisted", "entries", len(entries))
			}
		}
	}

	return svc, nil
}
