package distractor

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertThreeDistinct(t *testing.T, correct string, opts []string) {
	t.Helper()
	require.Len(t, opts, 3)
	seen := map[string]bool{foldKey(correct): true}
	for _, opt := range opts {
		assert.NotEmpty(t, opt)
		assert.False(t, seen[foldKey(opt)], "option %q repeats", opt)
		seen[foldKey(opt)] = true
	}
}

func TestYearDistractors(t *testing.T) {
	s := NewSeeded(1)
	opts := s.Synthesize("1822", "História")
	assertThreeDistinct(t, "1822", opts)
	for _, opt := range opts {
		year, err := strconv.Atoi(opt)
		require.NoError(t, err, "expected a 4-digit year, got %q", opt)
		assert.GreaterOrEqual(t, year, 1400)
		assert.LessOrEqual(t, year, 2100)
		assert.NotEqual(t, 1822, year)
	}
}

func TestYearAtRangeEdge(t *testing.T) {
	s := NewSeeded(7)
	opts := s.Synthesize("2100", "História")
	assertThreeDistinct(t, "2100", opts)
	for _, opt := range opts {
		year, _ := strconv.Atoi(opt)
		assert.LessOrEqual(t, year, 2100)
	}
}

func TestBodyQuantityDistractors(t *testing.T) {
	s := NewSeeded(2)
	opts := s.Synthesize("Dois pulmões", "Ciências")
	assertThreeDistinct(t, "Dois pulmões", opts)
	assert.Contains(t, opts, "Um pulmão")
}

func TestQuantityFeminineAgreement(t *testing.T) {
	s := NewSeeded(2)
	opts := s.Synthesize("Quatro câmaras", "Ciências")
	assertThreeDistinct(t, "Quatro câmaras", opts)
	assert.Contains(t, opts, "Uma câmara")
	assert.Contains(t, opts, "Duas câmaras")
}

func TestNumberUnitDistractors(t *testing.T) {
	s := NewSeeded(3)
	opts := s.Synthesize("206 ossos", "Ciências")
	assertThreeDistinct(t, "206 ossos", opts)
	for _, opt := range opts {
		assert.Regexp(t, `^[0-9]+ ossos$`, opt)
	}
}

func TestSmallIntegerPadsCandidates(t *testing.T) {
	s := NewSeeded(4)
	opts := s.Synthesize("1", "Matemática")
	assertThreeDistinct(t, "1", opts)
	for _, opt := range opts {
		n, err := strconv.Atoi(opt)
		require.NoError(t, err)
		assert.Positive(t, n)
	}
}

func TestPersonDistractors(t *testing.T) {
	s := NewSeeded(5)
	opts := s.Synthesize("Dom Pedro I", "História")
	assertThreeDistinct(t, "Dom Pedro I", opts)
	for _, opt := range opts {
		assert.NotEqual(t, "Dom Pedro I", opt)
	}
}

func TestOrganDistractors(t *testing.T) {
	s := NewSeeded(6)
	opts := s.Synthesize("Coração", "Ciências")
	assertThreeDistinct(t, "Coração", opts)
	allowed := map[string]bool{}
	for _, o := range organs {
		allowed[o] = true
	}
	for _, opt := range opts {
		assert.True(t, allowed[opt], "organ distractor %q not in organ list", opt)
	}
}

func TestPlaceDistractors(t *testing.T) {
	s := NewSeeded(8)
	opts := s.Synthesize("Brasília", "Geografia")
	assertThreeDistinct(t, "Brasília", opts)
}

func TestConceptFallsBackToGenericBucket(t *testing.T) {
	s := NewSeeded(9)
	opts := s.Synthesize("Xilofone", "Artes Marcianas")
	assertThreeDistinct(t, "Xilofone", opts)
}

func TestCategoryClassification(t *testing.T) {
	s := NewSeeded(10)
	cases := map[string]string{
		"1822":         "year",
		"Dois pulmões": "body-quantity",
		"206 ossos":    "number-unit",
		"42":           "number",
		"Dom Pedro I":  "person",
		"Brasília":     "place",
		"Coração":      "organ",
		"Fotossíntese": "concept",
	}
	for answer, want := range cases {
		assert.Equal(t, want, s.Category(answer), "answer %q", answer)
	}
}

func TestAlwaysThreeEvenForEmptyAnswer(t *testing.T) {
	s := NewSeeded(11)
	opts := s.Synthesize("", "Ciências")
	require.Len(t, opts, 3)
	for _, opt := range opts {
		assert.NotEmpty(t, opt)
	}
}
