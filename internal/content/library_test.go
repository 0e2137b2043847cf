package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aventura-edu/backend/internal/game"
	"github.com/aventura-edu/backend/internal/textnorm"
)

func TestSpecificLookupCorpoHumano(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "Ciências", Theme: "Corpo Humano", SchoolGrade: "6º ano"}

	q, ok := lib.SpecificQuestion(params, 0)
	require.True(t, ok)
	assert.Equal(t, "Coração", q.Answer)
	assert.Contains(t, q.Choices, "Coração")
	assert.Equal(t, "circulacao", textnorm.NormalizeWord(q.Word))
	assert.NoError(t, q.Validate())
}

func TestSpecificLookupMatchesThemeSubstring(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "ciencias", Theme: "corpo", SchoolGrade: "5º ano"}
	q, ok := lib.SpecificQuestion(params, 1)
	require.True(t, ok)
	assert.NotEmpty(t, q.Content)
}

func TestSpecificLookupDegradesGradeWithinTheme(t *testing.T) {
	lib := NewLibrary()
	// No "Animais" bank for the late band; the middle-band bank still serves.
	params := game.GameParameters{Subject: "Ciências", Theme: "Animais", SchoolGrade: "9º ano"}
	q, ok := lib.SpecificQuestion(params, 0)
	require.True(t, ok)
	assert.Equal(t, "Animais com coluna vertebral", q.Answer)
}

func TestSpecificLookupMissesUnknownTheme(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "Ciências", Theme: "Astronomia Profunda", SchoolGrade: "6º ano"}
	_, ok := lib.SpecificQuestion(params, 0)
	assert.False(t, ok)
}

func TestGenericLookupAlwaysServes(t *testing.T) {
	lib := NewLibrary()
	cases := []game.GameParameters{
		{Subject: "Ciências", Theme: "Astronomia Profunda", SchoolGrade: "6º ano"},
		{Subject: "Xadrez Quântico", Theme: "Aberturas", SchoolGrade: "4º ano"},
		{},
	}
	for _, params := range cases {
		q, ok := lib.GenericQuestion(params, 2)
		require.True(t, ok, "params %+v", params)
		assert.NoError(t, q.Validate())
	}
}

func TestGenericLookupPrefersSubjectOverGenericBucket(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "História", Theme: "Algo Inexistente", SchoolGrade: "5º ano"}
	q, ok := lib.GenericQuestion(params, 0)
	require.True(t, ok)
	// Should come from a História bank, not from Conhecimentos Gerais.
	assert.NotEqual(t, "Uma coleção organizada de conhecimentos", q.Answer)
}

func TestUnknownSubjectFallsToGenericBucket(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "Alquimia", Theme: "Pedras", SchoolGrade: "6º ano"}
	q, ok := lib.GenericQuestion(params, 1)
	require.True(t, ok)
	assert.Equal(t, "Santos Dumont", q.Answer)
}

func TestStoriesLookup(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "História", Theme: "Independência do Brasil", SchoolGrade: "5º ano"}

	st, ok := lib.SpecificStory(params)
	require.True(t, ok)
	assert.Equal(t, "O Mensageiro do Ipiranga", st.Title)

	st, ok = lib.GenericStory(game.GameParameters{Subject: "Culinária"})
	require.True(t, ok)
	assert.NotEmpty(t, st.Content)
}

func TestGradeBand(t *testing.T) {
	cases := map[string]string{
		"1º ano":   BandEarly,
		"3a série": BandEarly,
		"4º ano":   BandMiddle,
		"6º ano":   BandMiddle,
		"7º ano":   BandLate,
		"9":        BandLate,
		"":         BandMiddle,
		"jardim":   BandMiddle,
	}
	for grade, want := range cases {
		assert.Equal(t, want, GradeBand(grade), "grade %q", grade)
	}
}

func TestQuestionReturnsFreshCopies(t *testing.T) {
	lib := NewLibrary()
	params := game.GameParameters{Subject: "Ciências", Theme: "Corpo Humano", SchoolGrade: "6º ano"}
	a, _ := lib.SpecificQuestion(params, 0)
	b, _ := lib.SpecificQuestion(params, 0)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a.ID, b.ID)
	a.Choices[0] = "mutated"
	assert.NotEqual(t, a.Choices[0], b.Choices[0])
}

func TestBuiltinEntriesAreInternallyUnique(t *testing.T) {
	for _, e := range builtinEntries {
		seenContent := map[string]bool{}
		seenWords := map[string]bool{}
		for _, seed := range e.Questions {
			ch := textnorm.ContentHash(seed.Content)
			wh := textnorm.NormalizeWord(seed.Word)
			assert.False(t, seenContent[ch], "%s/%s repeats content %q", e.Subject, e.Theme, seed.Content)
			assert.False(t, seenWords[wh], "%s/%s repeats word %q", e.Subject, e.Theme, seed.Word)
			seenContent[ch] = true
			seenWords[wh] = true

			q := game.Question{ID: "x", Content: seed.Content, Choices: seed.Choices[:], Answer: seed.Answer, Word: seed.Word, Source: "static"}
			assert.NoError(t, q.Validate(), "%s/%s question %q", e.Subject, e.Theme, seed.Content)
		}
	}
}
