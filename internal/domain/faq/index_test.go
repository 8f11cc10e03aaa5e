package faq

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	v := []float32{3, 4}
	if got := cosineSimilarity(v, v); math.Abs(got-1) > 1e-9 {
		t.Fatalf("cosine of a vector with itself = %v, want 1", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{0, 1}); math.Abs(got) > 1e-9 {
		t.Fatalf("cosine of orthogonal vectors = %v, want 0", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{-1, 0}); math.Abs(got+1) > 1e-9 {
		t.Fatalf("cosine of opposite vectors = %v, want -1", got)
	}
	if got := cosineSimilarity([]float32{0, 0}, v); got != 0 {
		t.Fatalf("cosine with zero vector = %v, want 0", got)
	}
}

func TestBestMatchPicksHighestScore(t *testing.T) {
	idx := &catalogIndex{
		entries: []Entry{{Question: "a"}, {Question: "b"}, {Question: "c"}},
		vectors: [][]float32{{1, 0}, {0, 1}, {0.9, 0.1}},
	}
	best, score := idx.bestMatch([]float32{1, 0})
	if best != 0 {
		t.Fatalf("best = %d, want 0", best)
	}
	if math.Abs(score-1) > 1e-9 {
		t.Fatalf("score = %v, want 1", score)
	}
}

func TestBestMatchTieKeepsLowestIndex(t *testing.T) {
	idx := &catalogIndex{
		entries: []Entry{{Question: "a"}, {Question: "b"}},
		vectors: [][]float32{{0, 2}, {0, 5}}, // same direction, same cosine
	}
	best, _ := idx.bestMatch([]float32{0, 1})
	if best != 0 {
		t.Fatalf("equal scores must keep the earliest entry, got %d", best)
	}
}

func TestBestMatchEmptyIndex(t *testing.T) {
	idx := &catalogIndex{}
	best, score := idx.bestMatch([]float32{1, 0})
	if best != -1 || score != 0 {
		t.Fatalf("empty index: best=%d score=%v, want -1 and 0", best, score)
	}
}

func TestBestMatchDeterministic(t *testing.T) {
	idx := &catalogIndex{
		entries: []Entry{{Question: "a"}, {Question: "b"}},
		vectors: [][]float32{{0.3, 0.7}, {0.7, 0.3}},
	}
	q := []float32{0.5, 0.6}
	firstBest, firstScore := idx.bestMatch(q)
	for i := 0; i < 5; i++ {
		best, score := idx.bestMatch(q)
		if best != firstBest || score != firstScore {
			t.Fatal("bestMatch is not deterministic for a fixed index")
		}
	}
}
