package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

func TestRouter_AskMatched(t *testing.T) {
	resp := faq.Response{
		Question:        "Kaip atidaryti sąskaitą?",
		Answer:          "Internetu arba filiale.",
		Matched:         true,
		MatchedQuestion: "Kaip atidaryti sąskaitą?",
		Score:           0.91,
		Mode:            faq.ModeWord2Vec,
	}
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Equal(t, "Kaip atidaryti sąskaitą?", req.Question)
			return resp, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/faq", `{"question":"Kaip atidaryti sąskaitą?"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get("X-Request-Id"))

	var got faq.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_AskFallbackStillOK(t *testing.T) {
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			return faq.Response{
				Question: req.Question,
				Answer:   faq.DefaultFallbackAnswer,
				Matched:  false,
			}, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/faq", `{"question":"kokia rytoj temperatūra?"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got faq.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.False(t, got.Matched)
	require.Equal(t, faq.DefaultFallbackAnswer, got.Answer)
}

func TestRouter_AskInvalidJSON(t *testing.T) {
	svc := &stubFAQService{}

	recorder := performRequest(http.MethodPost, "/api/v1/faq", `{"question":123}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_AskServiceFailure(t *testing.T) {
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			return faq.Response{}, apperrors.Wrap(apperrors.CodeFAQError, "store unavailable", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/faq", `{"question":"labas"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "faq_failed", errBody["error"]["code"])
}

func TestRouter_Trending(t *testing.T) {
	svc := &stubFAQService{
		trendingFn: func(ctx context.Context) ([]faq.TrendingQuery, error) {
			return []faq.TrendingQuery{{Query: "Kaip atidaryti sąskaitą?", Count: 12}}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/faq/trending", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Recommendations []faq.TrendingQuery `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	require.Equal(t, int64(12), body.Recommendations[0].Count)
}

func TestRouter_Health(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/healthz", "", newRouterUnderTest(t, &stubFAQService{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "ok")
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc faq.Service) *http.Server {
	t.Helper()
	handler := NewChatbotHandler(svc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubFAQService struct {
	answerFn   func(ctx context.Context, req faq.Request) (faq.Response, error)
	trendingFn func(ctx context.Context) ([]faq.TrendingQuery, error)
}

func (s *stubFAQService) Answer(ctx context.Context, req faq.Request) (faq.Response, error) {
	if s.answerFn != nil {
		return s.answerFn(ctx, req)
	}
	return faq.Response{}, nil
}

func (s *stubFAQService) Trending(ctx context.Context) ([]faq.TrendingQuery, error) {
	if s.trendingFn != nil {
		return s.trendingFn(ctx)
	}
	return nil, nil
}

func (s *stubFAQService) Vectors() [][]float32 { return nil }

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
