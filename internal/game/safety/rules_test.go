package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolationMatchesDenylistIgnoringAccents(t *testing.T) {
	term, bad := Violation("A história fala de violência urbana")
	assert.True(t, bad)
	assert.Equal(t, "violencia", term)
}

func TestViolationMatchesTemplateBoilerplate(t *testing.T) {
	_, bad := Violation("Como um modelo de linguagem, não posso gerar isso")
	assert.True(t, bad)
}

func TestViolationCleanText(t *testing.T) {
	_, bad := Violation("O coração bombeia sangue por todo o corpo")
	assert.False(t, bad, "anatomical vocabulary is not denylisted")
}

func TestCheckScansAllFields(t *testing.T) {
	_, bad := Check("pergunta limpa", "opção limpa", "insira a pergunta aqui")
	assert.True(t, bad)
}

func TestLooksLikeOnboarding(t *testing.T) {
	assert.True(t, LooksLikeOnboarding("Prepare-se para a aventura! Responda as perguntas e boa sorte!"))
	assert.False(t, LooksLikeOnboarding("Naquela manhã, você caminhou até o rio e eu segui seus passos."))
}

func TestIsNarrative(t *testing.T) {
	assert.True(t, IsNarrative("Você abriu a porta da biblioteca e encontrou um mapa antigo."))
	assert.False(t, IsNarrative("Complete o quiz para desbloquear o conteúdo."))
}
