package faq

import (
	"testing"

	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

func testCorpus() [][]string {
	return [][]string{
		{"atidaryti", "sąskaitą", "banke"},
		{"sąskaitos", "mokesčiai", "banke"},
		{"pamiršau", "slaptažodį"},
	}
}

func TestTrainModelWord2Vec(t *testing.T) {
	cfg := Config{Mode: ModeWord2Vec, VectorSize: 32}.withDefaults()
	m, err := trainModel(cfg, testCorpus())
	if err != nil {
		t.Fatalf("trainModel: %v", err)
	}
	if m.vocab.Size() != 7 {
		t.Fatalf("expected 7 vocabulary words, got %d", m.vocab.Size())
	}
	for _, sentence := range testCorpus() {
		for _, tok := range sentence {
			vec, ok := m.vector(tok)
			if !ok {
				t.Fatalf("corpus token %q has no vector", tok)
			}
			if len(vec) != cfg.VectorSize {
				t.Fatalf("token %q: vector size %d, want %d", tok, len(vec), cfg.VectorSize)
			}
		}
	}
	if _, ok := m.vector("nematytas"); ok {
		t.Fatal("word2vec mode must not resolve out-of-vocabulary tokens")
	}
}

func TestTrainModelFastTextResolvesUnknownTokens(t *testing.T) {
	cfg := Config{Mode: ModeFastText, VectorSize: 16}.withDefaults()
	m, err := trainModel(cfg, testCorpus())
	if err != nil {
		t.Fatalf("trainModel: %v", err)
	}
	vec, ok := m.vector("sąskaitoms")
	if !ok {
		t.Fatal("fasttext mode must resolve unseen tokens via n-grams")
	}
	var nonzero bool
	for _, x := range vec {
		if x != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Fatal("n-gram vector for unseen token is all zeros")
	}
}

func TestTrainModelDeterministic(t *testing.T) {
	cfg := Config{Mode: ModeWord2Vec, VectorSize: 16, Seed: 42}.withDefaults()
	a, err := trainModel(cfg, testCorpus())
	if err != nil {
		t.Fatalf("trainModel: %v", err)
	}
	b, err := trainModel(cfg, testCorpus())
	if err != nil {
		t.Fatalf("trainModel: %v", err)
	}
	for _, tok := range []string{"atidaryti", "sąskaitą", "banke"} {
		va, _ := a.vector(tok)
		vb, _ := b.vector(tok)
		for i := range va {
			if va[i] != vb[i] {
				t.Fatalf("token %q trains differently across runs with the same seed", tok)
			}
		}
	}
}

func TestTrainModelEmptyCorpus(t *testing.T) {
	cfg := Config{}.withDefaults()
	for _, corpus := range [][][]string{nil, {}, {{}, {}}} {
		if _, err := trainModel(cfg, corpus); !apperrors.IsCode(err, apperrors.CodeTrainingError) {
			t.Fatalf("expected training error for corpus %v, got %v", corpus, err)
		}
	}
}

func TestVocabularyMinCount(t *testing.T) {
	corpus := [][]string{
		{"dažnas", "retas"},
		{"dažnas"},
	}
	v := newVocabulary(corpus, 2)
	if _, ok := v.Lookup("dažnas"); !ok {
		t.Fatal("frequent token missing from vocabulary")
	}
	if _, ok := v.Lookup("retas"); ok {
		t.Fatal("token below minCount must be excluded")
	}
}

func TestGramBucketsSkipFullWord(t *testing.T) {
	cfg := Config{Mode: ModeFastText, MinN: 3, MaxN: 6, SubwordBuckets: 64}.withDefaults()
	m := &model{cfg: cfg}
	// "<ab>" has length 4, inside [3,6]; the run equal to the whole marked
	// word must be skipped so only the length-3 grams remain.
	buckets := m.gramBuckets("ab")
	if len(buckets) != 2 {
		t.Fatalf("expected 2 n-gram buckets for %q, got %d", "ab", len(buckets))
	}
	for _, b := range buckets {
		if b < 0 || b >= cfg.SubwordBuckets {
			t.Fatalf("bucket %d out of range", b)
		}
	}
}
