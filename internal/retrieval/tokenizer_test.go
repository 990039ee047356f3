package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Tokenize("Hello, World! It's 2024.")
	assert.Equal(t, []string{"hello", "world", "it", "s", "2024"}, tokens)
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t\n"))
	assert.Empty(t, Tokenize("!!!???"))
}

func TestTokenize_CollapsesWhitespaceRuns(t *testing.T) {
	tokens := Tokenize("click   register --- then\n\nsubmit")
	assert.Equal(t, []string{"click", "register", "then", "submit"}, tokens)
}

func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"How do I register for an event?",
		"Certificates: download, print & share!",
		"a  b\tc",
	}
	for _, input := range inputs {
		once := Tokenize(input)
		again := Tokenize(strings.Join(once, " "))
		assert.Equal(t, once, again)
	}
}

func TestTermFrequency_Normalization(t *testing.T) {
	tokens := []string{"event", "event", "register", "event"}
	tf := TermFrequency(tokens)

	assert.InDelta(t, 3.0/4.0, tf["event"], 1e-12)
	assert.InDelta(t, 1.0/4.0, tf["register"], 1e-12)
	assert.Len(t, tf, 2)
}

func TestTermFrequency_EmptyTokens(t *testing.T) {
	tf := TermFrequency(nil)
	assert.Empty(t, tf)
}

func TestTermFrequency_SumsToOne(t *testing.T) {
	tf := TermFrequency([]string{"a", "b", "b", "c", "c", "c"})
	sum := 0.0
	for _, f := range tf {
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}
