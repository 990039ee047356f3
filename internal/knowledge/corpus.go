// Package knowledge loads the static help-center corpus the retrieval
// engine is built from. The corpus is configuration, not data: it is read
// once at startup and immutable for the life of the process.
package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/voluntree/assist/internal/domain"
)

//go:embed corpus.json
var builtinCorpus []byte

// Corpus is a versioned, validated set of knowledge chunks.
type Corpus struct {
	Version string                   `json:"version"`
	Chunks  []*domain.KnowledgeChunk `json:"chunks"`
}

// LoadBuiltin parses and validates the corpus compiled into the binary.
func LoadBuiltin() (*Corpus, error) {
	return parse(builtinCorpus)
}

// LoadFile parses and validates a corpus override file. An empty path
// falls back to the built-in corpus.
func LoadFile(path string) (*Corpus, error) {
	if path == "" {
		return LoadBuiltin()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Corpus, error) {
	var corpus Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "invalid corpus JSON", err)
	}
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	return &corpus, nil
}

// Validate checks every chunk and rejects duplicate IDs.
func (c *Corpus) Validate() error {
	if len(c.Chunks) == 0 {
		return domain.ErrEmptyCorpus
	}

	seen := make(map[string]struct{}, len(c.Chunks))
	for i, chunk := range c.Chunks {
		if chunk == nil {
			return domain.NewDomainError(domain.ErrCodeValidation, fmt.Sprintf("chunk %d is null", i))
		}
		if err := domain.ValidateChunk(chunk); err != nil {
			return domain.NewDomainErrorWithCause(domain.ErrCodeValidation,
				fmt.Sprintf("chunk %d (%s) is invalid", i, chunk.ID), err)
		}
		if _, ok := seen[chunk.ID]; ok {
			return domain.NewDomainErrorWithCause(domain.ErrCodeValidation,
				fmt.Sprintf("chunk %d", i), domain.ErrDuplicateChunkID)
		}
		seen[chunk.ID] = struct{}{}
	}
	return nil
}
