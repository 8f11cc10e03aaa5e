package faq

import (
	"math"
	"testing"
)

func manualModel() *model {
	cfg := Config{Mode: ModeWord2Vec, VectorSize: 2}.withDefaults()
	vocab := newVocabulary([][]string{{"labas", "rytas"}}, 1)
	return &model{
		cfg:   cfg,
		vocab: vocab,
		word:  [][]float32{{1, 0}, {0, 1}},
	}
}

func TestEncodeSentenceMeansTokenVectors(t *testing.T) {
	m := manualModel()
	vec := encodeSentence(m, []string{"labas", "rytas"})
	if math.Abs(float64(vec[0])-0.5) > 1e-6 || math.Abs(float64(vec[1])-0.5) > 1e-6 {
		t.Fatalf("expected [0.5 0.5], got %v", vec)
	}
}

func TestEncodeSentenceSkipsUnresolvableTokens(t *testing.T) {
	m := manualModel()
	vec := encodeSentence(m, []string{"labas", "nematytas"})
	if vec[0] != 1 || vec[1] != 0 {
		t.Fatalf("unresolvable token must not dilute the mean, got %v", vec)
	}
}

func TestEncodeSentenceZeroVectorFallback(t *testing.T) {
	m := manualModel()
	for _, tokens := range [][]string{nil, {}, {"nematytas", "kitas"}} {
		vec := encodeSentence(m, tokens)
		if len(vec) != m.cfg.VectorSize {
			t.Fatalf("expected %d-dimensional vector, got %d", m.cfg.VectorSize, len(vec))
		}
		for i, x := range vec {
			if x != 0 {
				t.Fatalf("tokens %v: expected zero vector, component %d is %v", tokens, i, x)
			}
		}
	}
}
