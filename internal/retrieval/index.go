package retrieval

import (
	"math"
	"sort"

	"github.com/voluntree/assist/internal/domain"
)

// defaultIDFWeight is the weight applied to query terms never seen in the
// corpus. A neutral 1 keeps novel terms in the query vector instead of
// silently zeroing them out.
const defaultIDFWeight = 1.0

// ScoredChunk pairs a chunk with its cosine similarity against a query.
type ScoredChunk struct {
	Chunk *domain.KnowledgeChunk
	Score float64
}

// Index holds the corpus-derived retrieval state: the IDF table and one
// precomputed vector (with norm) per chunk. It is built once at startup
// and read-only afterwards, so concurrent queries need no locking.
type Index struct {
	chunks  []*domain.KnowledgeChunk
	idf     map[string]float64
	vectors []Vector
	norms   []float64
}

// BuildIndex computes the smoothed IDF table over the corpus and caches a
// TF-IDF vector for every chunk.
func BuildIndex(chunks []*domain.KnowledgeChunk) *Index {
	df := make(map[string]int)
	tokenized := make([][]string, len(chunks))
	for i, chunk := range chunks {
		tokens := Tokenize(chunk.Text())
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(chunks))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((n+1)/(float64(count)+1)) + 1
	}

	idx := &Index{
		chunks:  chunks,
		idf:     idf,
		vectors: make([]Vector, len(chunks)),
		norms:   make([]float64, len(chunks)),
	}
	for i, tokens := range tokenized {
		vec := idx.Vectorize(tokens)
		idx.vectors[i] = vec
		idx.norms[i] = vec.Norm()
	}
	return idx
}

// Vectorize builds a sparse TF-IDF vector for a token sequence. Terms
// absent from the IDF table fall back to defaultIDFWeight.
func (idx *Index) Vectorize(tokens []string) Vector {
	tf := TermFrequency(tokens)
	vec := make(Vector, len(tf))
	for term, freq := range tf {
		weight, ok := idx.idf[term]
		if !ok {
			weight = defaultIDFWeight
		}
		vec[term] = freq * weight
	}
	return vec
}

// IDF returns the corpus weight for a term and whether the term was seen
// in the corpus.
func (idx *Index) IDF(term string) (float64, bool) {
	w, ok := idx.idf[term]
	return w, ok
}

// Chunks returns the indexed corpus in original order.
func (idx *Index) Chunks() []*domain.KnowledgeChunk {
	return idx.chunks
}

// Size returns the number of indexed chunks.
func (idx *Index) Size() int {
	return len(idx.chunks)
}

// FilterEligible returns the chunks visible to the given requester role,
// preserving corpus order. Unknown or empty roles match "all" chunks only.
func FilterEligible(chunks []*domain.KnowledgeChunk, role string) []*domain.KnowledgeChunk {
	normalized := domain.NormalizeRequesterRole(role)
	eligible := make([]*domain.KnowledgeChunk, 0, len(chunks))
	for _, chunk := range chunks {
		if chunkVisible(chunk, normalized) {
			eligible = append(eligible, chunk)
		}
	}
	return eligible
}

func chunkVisible(chunk *domain.KnowledgeChunk, normalizedRole string) bool {
	if chunk.Role == domain.RoleAll {
		return true
	}
	return normalizedRole != "" && string(chunk.Role) == normalizedRole
}

// Retrieve returns up to k role-eligible chunks ranked by cosine
// similarity to the query, most relevant first. Ties keep corpus order.
// An empty query short-circuits to an empty result: a zero query vector
// scores 0 against everything, and replaying corpus order as a "ranking"
// helps nobody.
func (idx *Index) Retrieve(query, role string, k int) []ScoredChunk {
	if k <= 0 {
		return nil
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	queryVec := idx.Vectorize(tokens)
	queryNorm := queryVec.Norm()
	if queryNorm == 0 {
		return nil
	}

	normalized := domain.NormalizeRequesterRole(role)
	scored := make([]ScoredChunk, 0, len(idx.chunks))
	for i, chunk := range idx.chunks {
		if !chunkVisible(chunk, normalized) {
			continue
		}

		score := 0.0
		if idx.norms[i] > 0 {
			dot := 0.0
			for term, qw := range queryVec {
				if dw, ok := idx.vectors[i][term]; ok {
					dot += qw * dw
				}
			}
			score = dot / (queryNorm * idx.norms[i])
		}
		scored = append(scored, ScoredChunk{Chunk: chunk, Score: score})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
