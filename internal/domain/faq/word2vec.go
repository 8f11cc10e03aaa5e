package faq

import (
	"hash/fnv"
	"math"
	"math/rand"

	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

const (
	negativeTableSize = 1 << 16
	maxExp            = 6.0
)

// model holds the token vectors trained for one chatbot instance. It is
// built exactly once at construction and is read-only afterwards.
type model struct {
	cfg   Config
	vocab *Vocabulary
	word  [][]float32 // input vectors, one per vocabulary slot
	grams [][]float32 // character n-gram bucket vectors, fasttext mode only
}

// trainModel learns skip-gram vectors with negative sampling over the
// normalized catalog questions. The corpus is the only training signal;
// no pretrained vectors are involved.
func trainModel(cfg Config, corpus [][]string) (*model, error) {
	vocab := newVocabulary(corpus, cfg.MinCount)
	var totalTokens int64
	for _, sentence := range corpus {
		totalTokens += int64(len(sentence))
	}
	if vocab.Size() == 0 || totalTokens == 0 {
		return nil, apperrors.Wrap(apperrors.CodeTrainingError, "training corpus is empty", nil)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	m := &model{cfg: cfg, vocab: vocab}
	m.word = randomMatrix(rng, vocab.Size(), cfg.VectorSize)
	if cfg.Mode == ModeFastText {
		m.grams = randomMatrix(rng, cfg.SubwordBuckets, cfg.VectorSize)
	}

	syn1 := zeroMatrix(vocab.Size(), cfg.VectorSize)
	table := buildNegativeTable(vocab)

	sentences := make([][]int, 0, len(corpus))
	for _, sentence := range corpus {
		ids := make([]int, 0, len(sentence))
		for _, tok := range sentence {
			if id, ok := vocab.Lookup(tok); ok {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			sentences = append(sentences, ids)
		}
	}

	var trained int64
	budget := int64(cfg.Epochs)*totalTokens + 1
	minLR := cfg.LearningRate * 1e-4
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for _, sent := range sentences {
			for pos, center := range sent {
				lr := cfg.LearningRate * (1 - float64(trained)/float64(budget))
				if lr < minLR {
					lr = minLR
				}
				trained++

				// reduced window, as in the reference skip-gram formulation
				reach := 1 + rng.Intn(cfg.Window)
				inputs := m.inputSlots(center)
				for off := -reach; off <= reach; off++ {
					ctxPos := pos + off
					if off == 0 || ctxPos < 0 || ctxPos >= len(sent) {
						continue
					}
					m.updatePair(inputs, sent[ctxPos], syn1, table, rng, lr)
				}
			}
		}
	}
	return m, nil
}

// updatePair performs one negative-sampling update: the center word's input
// representation against one positive context and k sampled negatives.
func (m *model) updatePair(inputs [][]float32, target int, syn1 [][]float32, table []int, rng *rand.Rand, lr float64) {
	dim := m.cfg.VectorSize
	l1 := meanVector(inputs, dim)
	neu1e := make([]float32, dim)

	for k := 0; k <= m.cfg.NegativeSamples; k++ {
		tgt := target
		label := float32(1)
		if k > 0 {
			tgt = table[rng.Intn(len(table))]
			if tgt == target {
				continue
			}
			label = 0
		}
		out := syn1[tgt]
		f := dot(l1, out)
		var grad float32
		switch {
		case f > maxExp:
			grad = label - 1
		case f < -maxExp:
			grad = label
		default:
			grad = label - float32(1/(1+math.Exp(-f)))
		}
		g := grad * float32(lr)
		for i := 0; i < dim; i++ {
			neu1e[i] += g * out[i]
			out[i] += g * l1[i]
		}
	}

	for _, in := range inputs {
		for i := 0; i < dim; i++ {
			in[i] += neu1e[i]
		}
	}
}

// vector resolves a token's embedding per the configured mode rules: known
// tokens always resolve; unknown tokens resolve only in fasttext mode, via
// their character n-gram buckets.
func (m *model) vector(token string) ([]float32, bool) {
	if id, ok := m.vocab.Lookup(token); ok {
		if m.cfg.Mode != ModeFastText {
			return m.word[id], true
		}
		return meanVector(m.inputSlots(id), m.cfg.VectorSize), true
	}
	if m.cfg.Mode != ModeFastText {
		return nil, false
	}
	buckets := m.gramBuckets(token)
	if len(buckets) == 0 {
		return nil, false
	}
	slots := make([][]float32, 0, len(buckets))
	for _, b := range buckets {
		slots = append(slots, m.grams[b])
	}
	return meanVector(slots, m.cfg.VectorSize), true
}

// inputSlots collects the vectors contributing to a known word's input
// representation: its own slot plus, in fasttext mode, its n-gram buckets.
func (m *model) inputSlots(id int) [][]float32 {
	if m.cfg.Mode != ModeFastText {
		return [][]float32{m.word[id]}
	}
	slots := [][]float32{m.word[id]}
	for _, bucket := range m.gramBuckets(m.vocab.Word(id)) {
		slots = append(slots, m.grams[bucket])
	}
	return slots
}

// gramBuckets maps a token's boundary-marked character n-grams onto the
// shared bucket table. The full marked word is left to the vocabulary slot.
func (m *model) gramBuckets(token string) []int {
	wrapped := []rune("<" + token + ">")
	out := make([]int, 0, 8)
	for n := m.cfg.MinN; n <= m.cfg.MaxN; n++ {
		if n > len(wrapped) {
			break
		}
		for start := 0; start+n <= len(wrapped); start++ {
			if n == len(wrapped) {
				continue
			}
			out = append(out, hashGram(string(wrapped[start:start+n]), m.cfg.SubwordBuckets))
		}
	}
	return out
}

func hashGram(gram string, buckets int) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(gram))
	return int(h.Sum64() % uint64(buckets))
}

// buildNegativeTable samples negatives from the unigram distribution raised
// to the 3/4 power.
func buildNegativeTable(v *Vocabulary) []int {
	table := make([]int, negativeTableSize)
	pow := make([]float64, v.Size())
	var total float64
	for id, count := range v.counts {
		pow[id] = math.Pow(float64(count), 0.75)
		total += pow[id]
	}
	id := 0
	cum := pow[0] / total
	for i := range table {
		table[i] = id
		if float64(i+1)/negativeTableSize > cum && id < v.Size()-1 {
			id++
			cum += pow[id] / total
		}
	}
	return table
}

func randomMatrix(rng *rand.Rand, rows, dim int) [][]float32 {
	out := make([][]float32, rows)
	for i := range out {
		row := make([]float32, dim)
		for j := range row {
			row[j] = float32((rng.Float64() - 0.5) / float64(dim))
		}
		out[i] = row
	}
	return out
}

func zeroMatrix(rows, dim int) [][]float32 {
	out := make([][]float32, rows)
	for i := range out {
		out[i] = make([]float32, dim)
	}
	return out
}

func meanVector(slots [][]float32, dim int) []float32 {
	out := make([]float32, dim)
	if len(slots) == 0 {
		return out
	}
	for _, slot := range slots {
		for i, x := range slot {
			out[i] += x
		}
	}
	inv := 1 / float32(len(slots))
	for i := range out {
		out[i] *= inv
	}
	return out
}
