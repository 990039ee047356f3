package retrieval

import "math"

// Vector is a sparse term-weight mapping. Terms with zero weight are
// absent rather than stored as 0.
type Vector map[string]float64

// Norm returns the Euclidean norm over the vector's own terms.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Cosine computes cosine similarity between two sparse vectors. The dot
// product runs over terms present in both; a zero norm on either side
// yields 0, never NaN.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	dot := 0.0
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	if dot == 0 {
		return 0
	}

	normA := a.Norm()
	normB := b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}
