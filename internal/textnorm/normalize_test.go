package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHashStripsAccentsAndPunctuation(t *testing.T) {
	a := ContentHash("O que é a fotossíntese?")
	b := ContentHash("o que e a fotossintese")
	assert.Equal(t, a, b)
	assert.Equal(t, "oqueeafotossintese", a)
}

func TestContentHashBounded(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "questao"
	}
	assert.LessOrEqual(t, len(ContentHash(long)), 100)
}

func TestContentHashEmpty(t *testing.T) {
	assert.Equal(t, "", ContentHash(""))
	assert.Equal(t, "", ContentHash("?!... "))
}

func TestNormalizeWordStripsSyntheticSuffixes(t *testing.T) {
	cases := map[string]string{
		"circulação":          "circulacao",
		"circulação_t1":       "circulacao",
		"Circulação-42":       "circulacao",
		"estrela-fallback":    "estrela",
		"estrela_emergency":   "estrela",
		"coragem-gemini":      "coragem",
		"independência_a1b2c": "independencia",
		"coração123":          "coracao",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeWord(in), "input %q", in)
	}
}

func TestNormalizeWordIdempotent(t *testing.T) {
	words := []string{"circulação_t1", "Fotossíntese", "estrela-fallback", "amizade", ""}
	for _, w := range words {
		once := NormalizeWord(w)
		assert.Equal(t, once, NormalizeWord(once), "input %q", w)
	}
}

func TestNormalizeWordEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeWord(""))
	assert.Equal(t, "", NormalizeWord("123"))
	assert.Equal(t, "", NormalizeWord("_t9"))
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Coração", "CORACAO"))
	assert.False(t, EqualFold("Coração", "Pulmão"))
}
