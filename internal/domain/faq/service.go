package faq

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
	"github.com/yanqian/faq-chatbot/pkg/metrics"
)

// Service answers free-text questions against the fixed FAQ catalog.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingQuery, error)
	// Vectors exposes the precomputed catalog sentence vectors in catalog
	// order, for persistence and inspection.
	Vectors() [][]float32
}

type service struct {
	cfg    Config
	norm   *normalizer
	model  *model
	index  *catalogIndex
	store  Store
	logger *slog.Logger
}

// NewService performs the one-time blocking build: catalog validation,
// normalization, embedding training and catalog vector precomputation.
// Construction is the dominant cost; callers keep the instance and reuse
// it across queries.
func NewService(cfg Config, entries []Entry, store Store, logger *slog.Logger) (Service, error) {
	cfg = cfg.withDefaults()
	if err := validateCatalog(entries); err != nil {
		return nil, err
	}

	norm := newNormalizer(cfg.Stopwords)
	if len(norm.stopwords) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeResourceError, "no stopword list available", nil)
	}

	corpus := make([][]string, len(entries))
	for i, entry := range entries {
		corpus[i] = norm.Normalize(entry.Question)
	}

	m, err := trainModel(cfg, corpus)
	if err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(entries))
	for i, tokens := range corpus {
		vectors[i] = encodeSentence(m, tokens)
	}

	logger = logger.With("component", "faq.service")
	logger.Info("faq model trained",
		"mode", string(cfg.Mode),
		"entries", len(entries),
		"vocabulary", m.vocab.Size(),
		"dimensions", cfg.VectorSize,
	)

	return &service{
		cfg:    cfg,
		norm:   norm,
		model:  m,
		index:  &catalogIndex{entries: entries, vectors: vectors},
		store:  store,
		logger: logger,
	}, nil
}

// Answer resolves a query to a catalog answer or the fallback message. It
// never returns an error for a well-formed request; internal faults degrade
// to the fallback answer.
func (s *service) Answer(ctx context.Context, req Request) (resp Response, err error) {
	start := time.Now()
	question := strings.TrimSpace(req.Question)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("faq answer recovered", "panic", r)
			resp = s.fallbackResponse(question, 0, start)
			err = nil
		}
	}()

	tokens := s.norm.Normalize(question)
	if len(tokens) == 0 {
		// nothing to match against; no similarity score is fabricated
		s.recordQuery(ctx, tokens, question, false)
		return s.fallbackResponse(question, 0, start), nil
	}

	queryVec := encodeSentence(s.model, tokens)
	best, score := s.index.bestMatch(queryVec)
	matched := best >= 0 && score >= s.cfg.SimilarityThreshold

	s.recordQuery(ctx, tokens, question, matched)

	if !matched {
		return s.fallbackResponse(question, score, start), nil
	}

	entry := s.index.entries[best]
	return Response{
		Question:        question,
		Answer:          entry.Answer,
		Matched:         true,
		MatchedQuestion: entry.Question,
		Score:           score,
		Mode:            s.cfg.Mode,
		Recommendations: s.recommendations(ctx),
		Stats: &metrics.MatchStats{
			Score:      score,
			Matched:    true,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeFAQError, "failed to load trending queries", err)
	}
	return recs, nil
}

func (s *service) Vectors() [][]float32 {
	return s.index.vectors
}

func (s *service) fallbackResponse(question string, score float64, start time.Time) Response {
	return Response{
		Question: question,
		Answer:   s.cfg.FallbackAnswer,
		Matched:  false,
		Score:    score,
		Mode:     s.cfg.Mode,
		Stats: &metrics.MatchStats{
			Score:      score,
			Matched:    false,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}
}

// recordQuery updates query statistics; failures are logged, never surfaced.
func (s *service) recordQuery(ctx context.Context, tokens []string, display string, matched bool) {
	if canonical := strings.Join(tokens, " "); canonical != "" {
		if err := s.store.IncrementQuery(ctx, canonical, display); err != nil {
			s.logger.Warn("faq trending increment failed", "error", err)
		}
	}
	if !matched {
		if err := s.store.IncrementFallback(ctx); err != nil {
			s.logger.Warn("faq fallback counter failed", "error", err)
		}
	}
}

func (s *service) recommendations(ctx context.Context) []TrendingQuery {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		s.logger.Warn("faq trending fetch failed", "error", err)
		return nil
	}
	return recs
}

func validateCatalog(entries []Entry) error {
	if len(entries) == 0 {
		return apperrors.Wrap(apperrors.CodeInvalidCatalog, "catalog is empty", nil)
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Question) == "" || strings.TrimSpace(entry.Answer) == "" {
			return apperrors.Wrap(apperrors.CodeInvalidCatalog,
				fmt.Sprintf("catalog entry %d has an empty question or answer", i), nil)
		}
	}
	return nil
}
