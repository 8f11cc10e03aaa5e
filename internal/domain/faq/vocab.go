package faq

// Vocabulary is an explicit token -> vector slot mapping. Lookups on absent
// tokens report false instead of relying on implicit map semantics.
type Vocabulary struct {
	index  map[string]int
	words  []string
	counts []int64
}

func newVocabulary(corpus [][]string, minCount int) *Vocabulary {
	freq := make(map[string]int64)
	order := make([]string, 0, 64)
	for _, sentence := range corpus {
		for _, tok := range sentence {
			if freq[tok] == 0 {
				order = append(order, tok)
			}
			freq[tok]++
		}
	}

	v := &Vocabulary{index: make(map[string]int, len(order))}
	for _, tok := range order {
		if freq[tok] < int64(minCount) {
			continue
		}
		v.index[tok] = len(v.words)
		v.words = append(v.words, tok)
		v.counts = append(v.counts, freq[tok])
	}
	return v
}

// Lookup resolves a token to its vector slot.
func (v *Vocabulary) Lookup(token string) (int, bool) {
	id, ok := v.index[token]
	return id, ok
}

// Size reports how many tokens hold a trained vector.
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Word returns the token stored at the given slot.
func (v *Vocabulary) Word(id int) string {
	return v.words[id]
}
