package faq

// encodeSentence aggregates token vectors into one fixed-size sentence
// vector by element-wise arithmetic mean. Tokens without a representation
// are skipped; an empty or fully out-of-vocabulary sequence yields the
// zero vector.
func encodeSentence(m *model, tokens []string) []float32 {
	out := make([]float32, m.cfg.VectorSize)
	var n int
	for _, tok := range tokens {
		vec, ok := m.vector(tok)
		if !ok {
			continue
		}
		for i, x := range vec {
			out[i] += x
		}
		n++
	}
	if n == 0 {
		return out
	}
	inv := 1 / float32(n)
	for i := range out {
		out[i] *= inv
	}
	return out
}
