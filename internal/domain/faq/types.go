package faq

import "github.com/yanqian/faq-chatbot/pkg/metrics"

// Entry is one question/answer pair from the FAQ catalog. Entries are
// immutable after load; an entry's identity is its index in catalog order.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Request encapsulates a FAQ lookup.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the HTTP transport. A well-formed request always
// produces a response; unmatched questions carry the fallback answer.
type Response struct {
	Question        string              `json:"question"`
	Answer          string              `json:"answer"`
	Matched         bool                `json:"matched"`
	MatchedQuestion string              `json:"matchedQuestion,omitempty"`
	Score           float64             `json:"score"`
	Mode            EmbeddingMode       `json:"mode"`
	Recommendations []TrendingQuery     `json:"recommendations,omitempty"`
	Stats           *metrics.MatchStats `json:"stats,omitempty"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
