package faq

import "math"

// catalogIndex keeps the catalog entries and their precomputed sentence
// vectors as parallel slices indexed by catalog order. Both are immutable
// after construction.
type catalogIndex struct {
	entries []Entry
	vectors [][]float32
}

// bestMatch scans the catalog for the highest cosine similarity. Ties keep
// the lowest index because only a strictly greater score replaces the
// current best. No threshold is applied here.
func (idx *catalogIndex) bestMatch(query []float32) (int, float64) {
	best := -1
	bestScore := 0.0
	for i, vec := range idx.vectors {
		score := cosineSimilarity(query, vec)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best, bestScore
}

// cosineSimilarity is defined as 0 when either vector has zero norm.
func cosineSimilarity(a, b []float32) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}
	var dotProd, normA, normB float64
	for i := 0; i < length; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dotProd += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProd / (math.Sqrt(normA) * math.Sqrt(normB))
}

func dot(a, b []float32) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}
	var sum float64
	for i := 0; i < length; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
